package classify

import (
	"fmt"
	"strings"
)

// Kind is the format family of a FileType.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindImage
	KindExecutable
	KindProprietary
	KindDocument
	KindArchive
	KindAudio
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindImage:       "image",
	KindExecutable:  "executable",
	KindProprietary: "proprietary",
	KindDocument:    "document",
	KindArchive:     "archive",
	KindAudio:       "audio",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindUnknown, false
}

// ImageType identifies an image format family.
type ImageType uint8

const (
	JPEG ImageType = iota + 1
	PNG
	GIF
	BMP
	SVG
	RAW
	WEBP
	TIFF
	PSD
	HEIF
	JPEG2000
	EPS
)

var imageTypeNames = map[ImageType]string{
	JPEG: "JPEG", PNG: "PNG", GIF: "GIF", BMP: "BMP", SVG: "SVG", RAW: "RAW",
	WEBP: "WEBP", TIFF: "TIFF", PSD: "PSD", HEIF: "HEIF", JPEG2000: "JPEG2000", EPS: "EPS",
}

func (t ImageType) String() string {
	if s, ok := imageTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ImageType(%d)", uint8(t))
}

// ParseImageType resolves an image extension to its format family.
func ParseImageType(ext string) (ImageType, bool) {
	switch strings.ToLower(ext) {
	case "jpg", "jpeg", "jpe", "jfif", "jif":
		return JPEG, true
	case "png":
		return PNG, true
	case "gif":
		return GIF, true
	case "bmp":
		return BMP, true
	case "svg", "svgz":
		return SVG, true
	case "raw", "arw", "cr2", "nrw", "k25":
		return RAW, true
	case "webp":
		return WEBP, true
	case "tiff", "tif":
		return TIFF, true
	case "psd":
		return PSD, true
	case "heif", "helc", "heic":
		return HEIF, true
	case "jp2", "j2k", "jpf", "jpx", "jpm", "mj2":
		return JPEG2000, true
	case "eps":
		return EPS, true
	}
	return 0, false
}

// MustImageType is like ParseImageType but panics when ext is not a known
// image extension. Callers confirm table membership first.
func MustImageType(ext string) ImageType {
	t, ok := ParseImageType(ext)
	if !ok {
		panic(fmt.Sprintf("classify: %q is not an image extension", ext))
	}
	return t
}

// ExecType identifies an executable format.
type ExecType uint8

const (
	EXE ExecType = iota + 1
	ACTION
	BAT
)

func (t ExecType) String() string {
	switch t {
	case EXE:
		return "EXE - Windows Executable"
	case ACTION:
		return "ACTION - MacOs Automator Action"
	case BAT:
		return "BAT - Windows Batch File"
	}
	return fmt.Sprintf("ExecType(%d)", uint8(t))
}

// ParseExecType resolves an executable extension to its format.
func ParseExecType(ext string) (ExecType, bool) {
	switch strings.ToLower(ext) {
	case "exe":
		return EXE, true
	case "action":
		return ACTION, true
	case "bat":
		return BAT, true
	}
	return 0, false
}

// MustExecType is like ParseExecType but panics on an unknown extension.
func MustExecType(ext string) ExecType {
	t, ok := ParseExecType(ext)
	if !ok {
		panic(fmt.Sprintf("classify: %q is not an executable extension", ext))
	}
	return t
}

// PropType identifies a proprietary design format.
type PropType uint8

const (
	PropPSD PropType = iota + 1
	PropAI
	PropINDD // .ind, .indd, .indt
)

func (t PropType) String() string {
	switch t {
	case PropPSD:
		return "PSD"
	case PropAI:
		return "AI"
	case PropINDD:
		return "INDD"
	}
	return fmt.Sprintf("PropType(%d)", uint8(t))
}

// ParsePropType resolves a proprietary extension to its format.
func ParsePropType(ext string) (PropType, bool) {
	switch strings.ToLower(ext) {
	case "psd":
		return PropPSD, true
	case "ind", "indd", "indt":
		return PropINDD, true
	case "ai":
		return PropAI, true
	}
	return 0, false
}

// MustPropType is like ParsePropType but panics on an unknown extension.
func MustPropType(ext string) PropType {
	t, ok := ParsePropType(ext)
	if !ok {
		panic(fmt.Sprintf("classify: %q is not a proprietary extension", ext))
	}
	return t
}

// FileType is the classification of a filename: a Kind plus, for kinds that
// have one, the specific format. FileType values are comparable.
//
// Document, Archive and Audio are valid kinds but no rule resolves to them yet.
type FileType struct {
	Kind Kind
	sub  uint8
}

// Unknown is the zero FileType.
var Unknown = FileType{}

// ImageFile returns an image FileType.
func ImageFile(t ImageType) FileType {
	return FileType{Kind: KindImage, sub: uint8(t)}
}

// ExecutableFile returns an executable FileType.
func ExecutableFile(t ExecType) FileType {
	return FileType{Kind: KindExecutable, sub: uint8(t)}
}

// ProprietaryFile returns a proprietary FileType.
func ProprietaryFile(t PropType) FileType {
	return FileType{Kind: KindProprietary, sub: uint8(t)}
}

// AudioFile returns the audio FileType, which has no subtype.
func AudioFile() FileType {
	return FileType{Kind: KindAudio}
}

// Image returns the image format when t is an image.
func (t FileType) Image() (ImageType, bool) {
	if t.Kind != KindImage {
		return 0, false
	}
	return ImageType(t.sub), true
}

// Executable returns the executable format when t is an executable.
func (t FileType) Executable() (ExecType, bool) {
	if t.Kind != KindExecutable {
		return 0, false
	}
	return ExecType(t.sub), true
}

// Proprietary returns the proprietary format when t is proprietary.
func (t FileType) Proprietary() (PropType, bool) {
	if t.Kind != KindProprietary {
		return 0, false
	}
	return PropType(t.sub), true
}

// IsUnknown reports whether t carries no classification.
func (t FileType) IsUnknown() bool {
	return t.Kind == KindUnknown
}

func (t FileType) String() string {
	switch t.Kind {
	case KindImage:
		return "image(" + ImageType(t.sub).String() + ")"
	case KindExecutable:
		return "executable(" + ExecType(t.sub).String() + ")"
	case KindProprietary:
		return "proprietary(" + PropType(t.sub).String() + ")"
	}
	return t.Kind.String()
}
