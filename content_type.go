package fileclass

import (
	"mime"
	"strings"

	"github.com/gobeaver/fileclass/classify"
)

// Fallback content type for names nothing else recognises
const ContentTypeOctetStream = "application/octet-stream"

var imageContentTypes = map[classify.ImageType]string{
	classify.JPEG:     "image/jpeg",
	classify.PNG:      "image/png",
	classify.GIF:      "image/gif",
	classify.BMP:      "image/bmp",
	classify.SVG:      "image/svg+xml",
	classify.WEBP:     "image/webp",
	classify.TIFF:     "image/tiff",
	classify.PSD:      "image/vnd.adobe.photoshop",
	classify.HEIF:     "image/heif",
	classify.JPEG2000: "image/jp2",
	classify.EPS:      "application/postscript",
}

var execContentTypes = map[classify.ExecType]string{
	classify.EXE:    "application/vnd.microsoft.portable-executable",
	classify.ACTION: "application/x-automator-action",
	classify.BAT:    "application/x-bat",
}

var propContentTypes = map[classify.PropType]string{
	classify.PropPSD:  "image/vnd.adobe.photoshop",
	classify.PropAI:   "application/illustrator",
	classify.PropINDD: "application/x-indesign",
}

// ContentType guesses a MIME type from a resolved file type, falling back to
// the system table for ext and then to application/octet-stream.
// RAW images have no single MIME type and use the fallback chain.
func ContentType(ft classify.FileType, ext string) string {
	var ct string
	if t, ok := ft.Image(); ok {
		ct = imageContentTypes[t]
	} else if t, ok := ft.Executable(); ok {
		ct = execContentTypes[t]
	} else if t, ok := ft.Proprietary(); ok {
		ct = propContentTypes[t]
	}
	if ct != "" {
		return ct
	}

	if ext != "" {
		if ct = mime.TypeByExtension("." + strings.ToLower(ext)); ct != "" {
			return ct
		}
	}
	return ContentTypeOctetStream
}
