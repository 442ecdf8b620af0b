package classify

import (
	"strings"
	"unicode/utf8"
)

// Filename holds the parts of a filename derived from its last dot.
type Filename struct {
	// Raw is the input as given.
	Raw string

	// Name is the part before the last dot, or Raw when there is no extension.
	Name string

	// Extension is the trimmed part after the last dot, case preserved.
	Extension string

	// HasExtension reports whether Extension was found.
	HasExtension bool
}

// Parse splits text into name and extension using the default invalid set.
func Parse(text string) Filename {
	return parse(text, DefaultInvalidChars)
}

func parse(text string, invalid []rune) Filename {
	f := Filename{Raw: text, Name: text}
	if i, ok := extensionIndex(text, invalid); ok {
		f.Name = text[:i]
		f.Extension = strings.TrimSpace(text[i+1:])
		f.HasExtension = true
	}
	return f
}

// HasInvalidChars reports whether text contains any character of DefaultInvalidChars.
func HasInvalidChars(text string) bool {
	return containsAny(text, DefaultInvalidChars)
}

// HasInvalidCharsIn reports whether text contains any character of set.
// The set replaces the default entirely; an empty set never matches.
func HasInvalidCharsIn(text string, set []rune) bool {
	return containsAny(text, set)
}

// HasReplacementChar reports whether text contains U+FFFD, which marks a
// failed decode somewhere upstream. Bytes that are not valid UTF-8 decode
// to U+FFFD as well, so "bad\xff.txt" is reported too.
func HasReplacementChar(text string) bool {
	return strings.ContainsRune(text, utf8.RuneError)
}

// HasSomeExtension reports whether text has a dot and the span from the last
// dot to the end is free of invalid characters.
func HasSomeExtension(text string) bool {
	_, ok := extensionIndex(text, DefaultInvalidChars)
	return ok
}

// HasExtension reports whether the lowercased extension of text equals one
// of candidates. Candidates are expected in lowercase without a dot.
func HasExtension(text string, candidates []string) bool {
	ext, ok := Extension(text)
	if !ok {
		return false
	}
	return matchesAny(strings.ToLower(ext), candidates)
}

// Extension returns the trimmed text after the last dot.
func Extension(text string) (string, bool) {
	f := Parse(text)
	return f.Extension, f.HasExtension
}

// Name returns the text before the last dot, or text itself when it has
// no extension.
func Name(text string) string {
	return Parse(text).Name
}

// IsValidFilename reports whether text has no invalid characters, does not
// start with a space and carries no replacement character.
func IsValidFilename(text string) bool {
	return isValidFilename(text, DefaultInvalidChars)
}

// IsValidFileWithExt reports whether text is a valid filename whose
// lowercased extension is one of allowed.
func IsValidFileWithExt(text string, allowed []string) bool {
	return isValidFileWithExt(text, allowed, DefaultInvalidChars)
}

func isValidFilename(text string, invalid []rune) bool {
	noInvalid := !containsAny(text, invalid)
	noLeadingSpace := !strings.HasPrefix(text, " ")
	noReplacement := !HasReplacementChar(text)
	return noInvalid && noLeadingSpace && noReplacement
}

func isValidFileWithExt(text string, allowed []string, invalid []rune) bool {
	if !isValidFilename(text, invalid) {
		return false
	}
	f := parse(text, invalid)
	if !f.HasExtension {
		return false
	}
	return matchesAny(strings.ToLower(f.Extension), allowed)
}

// extensionIndex returns the index of the last dot when the trailing span
// starting at it holds no invalid character.
func extensionIndex(text string, invalid []rune) (int, bool) {
	i := strings.LastIndexByte(text, '.')
	if i < 0 {
		return 0, false
	}
	if containsAny(text[i:], invalid) {
		return 0, false
	}
	return i, true
}

func containsAny(text string, set []rune) bool {
	for _, c := range set {
		if strings.ContainsRune(text, c) {
			return true
		}
	}
	return false
}

func matchesAny(ext string, candidates []string) bool {
	for _, c := range candidates {
		if c == ext {
			return true
		}
	}
	return false
}
