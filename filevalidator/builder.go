package filevalidator

import (
	"github.com/gobeaver/fileclass/classify"
	"github.com/gobwas/glob"
)

// Builder provides a fluent API for constructing validators
type Builder struct {
	constraints Constraints
}

// NewBuilder creates a new validator builder with sensible defaults
func NewBuilder() *Builder {
	return &Builder{
		constraints: DefaultConstraints(),
	}
}

// Empty creates a builder with minimal defaults (no restrictions)
func Empty() *Builder {
	return &Builder{}
}

// --- Classifier ---

// WithClassifier sets the classifier used for character, extension and family checks
func (b *Builder) WithClassifier(c *classify.Classifier) *Builder {
	b.constraints.Classifier = c
	return b
}

// InvalidChars replaces the invalid-character set, keeping the current
// classifier's tables and features
func (b *Builder) InvalidChars(chars ...rune) *Builder {
	base := b.constraints.Classifier
	if base == nil {
		base = classify.NewDefault()
	}
	c, err := classify.New(
		classify.WithFeatures(base.Features()),
		classify.WithTables(base.Tables()),
		classify.WithInvalidChars(chars),
	)
	if err != nil {
		// base already passed the same table check
		panic(err)
	}
	b.constraints.Classifier = c
	return b
}

// --- Extension constraints ---

// Extensions sets the allowed file extensions (e.g., "jpg", ".png")
func (b *Builder) Extensions(exts ...string) *Builder {
	b.constraints.AllowedExts = append(b.constraints.AllowedExts, exts...)
	return b
}

// BlockExtensions adds extensions to the blocklist
func (b *Builder) BlockExtensions(exts ...string) *Builder {
	b.constraints.BlockedExts = append(b.constraints.BlockedExts, exts...)
	return b
}

// RequireExtension requires names to have an extension
func (b *Builder) RequireExtension() *Builder {
	b.constraints.RequireExtension = true
	return b
}

// AllowNoExtension allows names without extensions
func (b *Builder) AllowNoExtension() *Builder {
	b.constraints.RequireExtension = false
	return b
}

// --- Family constraints ---

// BlockExecutables rejects executable names
func (b *Builder) BlockExecutables() *Builder {
	b.constraints.BlockExecutables = true
	return b
}

// AllowExecutables accepts executable names
func (b *Builder) AllowExecutables() *Builder {
	b.constraints.BlockExecutables = false
	return b
}

// AllowKinds restricts names to the given families
func (b *Builder) AllowKinds(kinds ...classify.Kind) *Builder {
	b.constraints.AllowedKinds = append(b.constraints.AllowedKinds, kinds...)
	return b
}

// --- Filename constraints ---

// MaxNameLength sets the maximum filename length
func (b *Builder) MaxNameLength(length int) *Builder {
	b.constraints.MaxNameLength = length
	return b
}

// NamePattern adds glob patterns (e.g., "invoice-*.pdf"); a name must match one of them.
// It panics if a pattern does not compile.
func (b *Builder) NamePattern(patterns ...string) *Builder {
	for _, p := range patterns {
		b.constraints.NamePatterns = append(b.constraints.NamePatterns, glob.MustCompile(p))
	}
	return b
}

// NameGlobs adds already compiled glob patterns
func (b *Builder) NameGlobs(globs ...glob.Glob) *Builder {
	b.constraints.NamePatterns = append(b.constraints.NamePatterns, globs...)
	return b
}

// --- Build ---

// Build creates the validator with the configured constraints
func (b *Builder) Build() *FileValidator {
	return New(b.constraints)
}

// Constraints returns the current constraints (for inspection)
func (b *Builder) Constraints() Constraints {
	return b.constraints
}

// --- Presets ---

// ForImages creates a builder pre-configured for image uploads
func ForImages() *Builder {
	return NewBuilder().
		AllowKinds(classify.KindImage).
		RequireExtension()
}

// ForDesignFiles creates a builder pre-configured for Photoshop, Illustrator and InDesign uploads
func ForDesignFiles() *Builder {
	return NewBuilder().
		AllowKinds(classify.KindProprietary).
		RequireExtension()
}

// ForExtensions creates a builder that only accepts the given extensions
func ForExtensions(exts ...string) *Builder {
	return NewBuilder().
		Extensions(exts...).
		RequireExtension()
}

// Strict creates a builder with strict validation settings
func Strict() *Builder {
	return NewBuilder().
		MaxNameLength(128).
		RequireExtension().
		BlockExecutables().
		AllowKinds(classify.KindImage, classify.KindProprietary)
}
