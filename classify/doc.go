// Package classify validates and classifies filenames by name alone.
//
// It answers three kinds of questions about a filename string:
//
//   - Is it well formed? No invalid characters, no leading space, and no
//     U+FFFD replacement character left behind by a failed decode.
//   - What are its parts? The extension is whatever follows the last dot,
//     trimmed of surrounding whitespace, provided that span is free of
//     invalid characters. The name is everything before that dot.
//   - What family does it belong to? Image, executable or proprietary
//     design format, resolved from extension tables into a FileType.
//
// Nothing here touches the file system or inspects file bytes.
//
// # Quick Start
//
// The always-on predicates are package functions using the default
// invalid-character set:
//
//	classify.IsValidFilename("report.pdf")              // true
//	classify.Extension("archive.tar.gz")                // "gz", true
//	classify.Name("archive.tar.gz")                     // "archive.tar"
//	classify.IsValidFileWithExt("a.CUSTOM", []string{"custom"}) // true
//
// Optional categories are enabled when the Classifier is built:
//
//	c, err := classify.New(classify.WithImage(), classify.WithFileType())
//	c.IsValidImage("photo.jpg") // true
//	c.FileType("photo.jpg")     // image(JPEG)
//
// NewDefault enables every category.
//
// # Case Handling
//
// Extension membership checks fold case: "SETUP.EXE" is an executable and
// "file.JPG" matches "jpg". Extraction itself preserves case. Image
// detection matches the tail of the whole lowercased name rather than the
// parsed extension.
//
// # Concurrency
//
// Every function is pure. A Classifier is immutable after New and may be
// shared between goroutines.
package classify
