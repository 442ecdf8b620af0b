package classify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrUnresolvableExtension is returned by New when a category table holds an
// extension that has no format subtype while file-type resolution is enabled.
var ErrUnresolvableExtension = errors.New("extension has no format subtype")

// Features lists the optional categories a Classifier answers for.
// A disabled category reports false from its predicates and never appears
// in FileType results.
type Features struct {
	Image       bool
	Executable  bool
	Proprietary bool
	FileType    bool
}

// AllFeatures enables every optional category.
func AllFeatures() Features {
	return Features{Image: true, Executable: true, Proprietary: true, FileType: true}
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithImage enables image predicates.
func WithImage() Option {
	return func(c *Classifier) { c.features.Image = true }
}

// WithExecutable enables executable predicates.
func WithExecutable() Option {
	return func(c *Classifier) { c.features.Executable = true }
}

// WithProprietary enables proprietary-format predicates.
func WithProprietary() Option {
	return func(c *Classifier) { c.features.Proprietary = true }
}

// WithFileType enables FileType resolution.
func WithFileType() Option {
	return func(c *Classifier) { c.features.FileType = true }
}

// WithFeatures replaces the enabled categories.
func WithFeatures(f Features) Option {
	return func(c *Classifier) { c.features = f }
}

// WithInvalidChars overrides the invalid-character set. The set is used as
// given and never merged with the default.
func WithInvalidChars(set []rune) Option {
	return func(c *Classifier) {
		c.tables.Invalid = append([]rune{}, set...)
	}
}

// WithTables replaces all reference tables. The invalid set is copied.
func WithTables(t Tables) Option {
	return func(c *Classifier) {
		c.tables = t
		if t.Invalid != nil {
			c.tables.Invalid = append([]rune{}, t.Invalid...)
		}
	}
}

// WithImageTable replaces the image table.
func WithImageTable(t ExtensionTable) Option {
	return func(c *Classifier) { c.tables.Image = t }
}

// WithExecutableTable replaces the executable table.
func WithExecutableTable(t ExtensionTable) Option {
	return func(c *Classifier) { c.tables.Executable = t }
}

// WithProprietaryTable replaces the proprietary table.
func WithProprietaryTable(t ExtensionTable) Option {
	return func(c *Classifier) { c.tables.Proprietary = t }
}

// Classifier answers validity and classification queries against a fixed
// set of tables. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	features Features
	tables   Tables
}

// New creates a Classifier with the default tables and no optional
// categories, then applies opts.
func New(opts ...Option) (*Classifier, error) {
	c := &Classifier{tables: DefaultTables()}
	for _, opt := range opts {
		opt(c)
	}
	if c.features.FileType {
		if err := c.checkResolvable(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewDefault creates a Classifier with the default tables and every
// optional category enabled.
func NewDefault() *Classifier {
	return &Classifier{features: AllFeatures(), tables: DefaultTables()}
}

func (c *Classifier) checkResolvable() error {
	for _, e := range c.tables.Image.exts {
		if _, ok := ParseImageType(e); !ok {
			return fmt.Errorf("image table: %q: %w", e, ErrUnresolvableExtension)
		}
	}
	for _, e := range c.tables.Executable.exts {
		if _, ok := ParseExecType(e); !ok {
			return fmt.Errorf("executable table: %q: %w", e, ErrUnresolvableExtension)
		}
	}
	return nil
}

// Features returns the enabled categories.
func (c *Classifier) Features() Features {
	return c.features
}

// Tables returns the reference tables. The invalid set is a copy.
func (c *Classifier) Tables() Tables {
	t := c.tables
	if t.Invalid != nil {
		t.Invalid = append([]rune{}, t.Invalid...)
	}
	return t
}

// InvalidChars returns a copy of the active invalid-character set.
func (c *Classifier) InvalidChars() []rune {
	return append([]rune{}, c.tables.invalidSet()...)
}

// Parse splits text into name and extension.
func (c *Classifier) Parse(text string) Filename {
	return parse(text, c.tables.invalidSet())
}

// HasInvalidChars reports whether text contains a character of the active set.
func (c *Classifier) HasInvalidChars(text string) bool {
	return containsAny(text, c.tables.invalidSet())
}

// HasSomeExtension reports whether text has a clean trailing extension.
func (c *Classifier) HasSomeExtension(text string) bool {
	_, ok := extensionIndex(text, c.tables.invalidSet())
	return ok
}

// HasExtension reports whether the lowercased extension is one of candidates.
func (c *Classifier) HasExtension(text string, candidates []string) bool {
	f := c.Parse(text)
	return f.HasExtension && matchesAny(strings.ToLower(f.Extension), candidates)
}

// Extension returns the trimmed extension of text.
func (c *Classifier) Extension(text string) (string, bool) {
	f := c.Parse(text)
	return f.Extension, f.HasExtension
}

// Name returns text without its extension.
func (c *Classifier) Name(text string) string {
	return c.Parse(text).Name
}

// IsValidFilename reports whether text is a well-formed filename.
func (c *Classifier) IsValidFilename(text string) bool {
	return isValidFilename(text, c.tables.invalidSet())
}

// IsValidFileWithExt reports whether text is well-formed and its extension
// is one of allowed.
func (c *Classifier) IsValidFileWithExt(text string, allowed []string) bool {
	return isValidFileWithExt(text, allowed, c.tables.invalidSet())
}

// IsExecutable reports whether the extension of text is in the executable
// table. The comparison ignores case, so "SETUP.EXE" is an executable.
func (c *Classifier) IsExecutable(text string) bool {
	if !c.features.Executable {
		return false
	}
	ext, ok := c.Extension(text)
	return ok && c.tables.Executable.Contains(ext)
}

// IsValidExecutable reports whether text is a valid filename and an executable.
func (c *Classifier) IsValidExecutable(text string) bool {
	return c.IsValidFilename(text) && c.IsExecutable(text)
}

// IsImage reports whether the lowercased text ends with an image extension.
// The match is on the tail of the whole name, not the parsed extension, so
// "photojpg" matches too.
func (c *Classifier) IsImage(text string) bool {
	if !c.features.Image {
		return false
	}
	return c.tables.Image.HasSuffixOf(text)
}

// IsValidImage reports whether text is an image and a valid filename.
func (c *Classifier) IsValidImage(text string) bool {
	return c.IsImage(text) && c.IsValidFilename(text)
}

// IsProprietary reports whether the extension of text is in the
// proprietary table.
func (c *Classifier) IsProprietary(text string) bool {
	if !c.features.Proprietary {
		return false
	}
	ext, ok := c.Extension(text)
	return ok && c.tables.Proprietary.Contains(ext)
}

// IsValidProprietary reports whether text is a valid filename and proprietary.
func (c *Classifier) IsValidProprietary(text string) bool {
	return c.IsValidFilename(text) && c.IsProprietary(text)
}

// FileType classifies text. Without an extension the result is Unknown.
// Image is checked before Executable; an image match also requires the
// parsed extension to be in the image table so that a loose suffix match
// such as "a.xjpg" is not resolved to a subtype.
func (c *Classifier) FileType(text string) FileType {
	if !c.features.FileType {
		return Unknown
	}
	ext, ok := c.Extension(text)
	if !ok {
		return Unknown
	}
	if c.IsImage(text) && c.tables.Image.Contains(ext) {
		return ImageFile(MustImageType(ext))
	}
	if c.IsExecutable(text) {
		return ExecutableFile(MustExecType(ext))
	}
	return Unknown
}

// Fingerprint returns a stable hash of the enabled features and tables.
// Two classifiers with the same fingerprint answer every query identically.
func (c *Classifier) Fingerprint() uint64 {
	d := xxhash.New()
	for _, f := range []bool{c.features.Image, c.features.Executable, c.features.Proprietary, c.features.FileType} {
		_, _ = d.WriteString(strconv.FormatBool(f))
		_, _ = d.WriteString(";")
	}
	// Every section and entry is length-prefixed so no entry can imitate a separator.
	invalid := c.tables.invalidSet()
	writeLen(d, len(invalid))
	for _, r := range invalid {
		writeField(d, string(r))
	}
	for _, t := range []ExtensionTable{c.tables.Image, c.tables.Executable, c.tables.Proprietary} {
		writeLen(d, len(t.exts))
		for _, e := range t.exts {
			writeField(d, e)
		}
	}
	return d.Sum64()
}

func writeLen(d *xxhash.Digest, n int) {
	_, _ = d.WriteString(strconv.Itoa(n))
	_, _ = d.WriteString(":")
}

func writeField(d *xxhash.Digest, s string) {
	writeLen(d, len(s))
	_, _ = d.WriteString(s)
}
