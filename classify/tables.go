package classify

import "strings"

// DefaultInvalidChars is the built-in set of characters refused in filenames.
var DefaultInvalidChars = []rune{
	'!', '@', '#', '$', '%', '^', '&', '*', '{', '}', '/', '\\', ',', '<', '>', '?', ':', ';',
	'\'', '|', '=', '+', '`',
}

// Extension lists for the built-in categories.
var (
	ImageFormats = []string{
		"jpg", "jpeg", "jpe", "jfif", "jif", "png", "gif", "bmp", "svg", "svgz", "raw", "arw", "cr2",
		"nrw", "k25", "webp", "tiff", "tif", "heif", "helc", "heic", "jp2", "j2k", "jpf", "jpx", "jpm",
		"mj2", "eps",
	}

	ProprietaryFormats = []string{"psd", "ind", "indt", "indd", "ai"}

	ExecutableFormats = []string{"action", "exe", "bat"}
)

// ExtensionTable is an immutable set of extensions for one category.
// Entries are stored lowercase without a leading dot, in insertion order.
type ExtensionTable struct {
	exts []string
	set  map[string]struct{}
}

// NewTable builds a table, normalising each entry to lowercase and
// stripping a leading dot. Blank and duplicate entries are dropped.
func NewTable(exts ...string) ExtensionTable {
	t := ExtensionTable{
		exts: make([]string, 0, len(exts)),
		set:  make(map[string]struct{}, len(exts)),
	}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e == "" {
			continue
		}
		if _, ok := t.set[e]; ok {
			continue
		}
		t.set[e] = struct{}{}
		t.exts = append(t.exts, e)
	}
	return t
}

// Contains reports whether ext is in the table, ignoring case.
func (t ExtensionTable) Contains(ext string) bool {
	_, ok := t.set[strings.ToLower(ext)]
	return ok
}

// HasSuffixOf reports whether the lowercased text ends with any entry.
func (t ExtensionTable) HasSuffixOf(text string) bool {
	lower := strings.ToLower(text)
	for _, e := range t.exts {
		if strings.HasSuffix(lower, e) {
			return true
		}
	}
	return false
}

// Extensions returns a copy of the entries in insertion order.
func (t ExtensionTable) Extensions() []string {
	out := make([]string, len(t.exts))
	copy(out, t.exts)
	return out
}

// Len returns the number of entries.
func (t ExtensionTable) Len() int {
	return len(t.exts)
}

// Tables groups the reference data a Classifier works from.
type Tables struct {
	// Invalid is the active invalid-character set. A nil set means DefaultInvalidChars;
	// a non-nil empty set disables character checks.
	Invalid []rune

	Image       ExtensionTable
	Executable  ExtensionTable
	Proprietary ExtensionTable
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		Image:       NewTable(ImageFormats...),
		Executable:  NewTable(ExecutableFormats...),
		Proprietary: NewTable(ProprietaryFormats...),
	}
}

func (t Tables) invalidSet() []rune {
	if t.Invalid == nil {
		return DefaultInvalidChars
	}
	return t.Invalid
}
