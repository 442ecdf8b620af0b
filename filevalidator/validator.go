package filevalidator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gobeaver/fileclass/classify"
)

// Validator provides the main interface for validating filenames
type Validator interface {
	// Validate validates a filename against the validator's constraints
	Validate(name string) error

	// ValidateResult validates a filename and reports every check performed
	ValidateResult(name string) *ValidationResult

	// GetConstraints returns the current validation constraints
	GetConstraints() Constraints
}

// FileValidator implements the Validator interface
type FileValidator struct {
	constraints Constraints
	classifier  *classify.Classifier
	allowed     classify.ExtensionTable
	blocked     classify.ExtensionTable
}

// New creates a new filename validator with the given constraints
func New(constraints Constraints) *FileValidator {
	classifier := constraints.Classifier
	if classifier == nil {
		classifier = classify.NewDefault()
	}
	return &FileValidator{
		constraints: constraints,
		classifier:  classifier,
		allowed:     classify.NewTable(constraints.AllowedExts...),
		blocked:     classify.NewTable(constraints.BlockedExts...),
	}
}

// NewDefault creates a new filename validator with sensible default constraints
func NewDefault() *FileValidator {
	return New(DefaultConstraints())
}

// Validate validates a filename and returns the first failure
func (v *FileValidator) Validate(name string) error {
	return v.ValidateResult(name).Error()
}

// ValidateResult runs every check against name and collects the outcome
func (v *FileValidator) ValidateResult(name string) *ValidationResult {
	rb := NewResultBuilder(name)
	c := v.classifier
	rb.SetRuleset(c.Fingerprint())

	if name == "" {
		rb.Fail(CheckFilename, ErrorTypeFileName, "empty filename")
		return rb.Build()
	}

	parsed := c.Parse(name)
	rb.SetParts(parsed.Name, parsed.Extension)
	rb.SetFileType(v.detectType(name))

	if limit := v.constraints.MaxNameLength; limit > 0 && utf8.RuneCountInString(name) > limit {
		rb.Fail(CheckLength, ErrorTypeFileName, fmt.Sprintf("filename exceeds maximum length of %d characters", limit))
	} else {
		rb.Pass(CheckLength)
	}

	if r, ok := firstInvalid(name, c.InvalidChars()); ok {
		rb.Fail(CheckCharacters, ErrorTypeFileName, fmt.Sprintf("filename contains invalid character: %c", r))
	} else {
		rb.Pass(CheckCharacters)
	}

	if strings.HasPrefix(name, " ") {
		rb.Fail(CheckLeadingSpace, ErrorTypeFileName, "filename starts with a space")
	} else {
		rb.Pass(CheckLeadingSpace)
	}

	if classify.HasReplacementChar(name) {
		rb.Fail(CheckEncoding, ErrorTypeFileName, "filename contains the unicode replacement character")
	} else {
		rb.Pass(CheckEncoding)
	}

	v.checkExtension(rb, parsed)

	if v.constraints.BlockExecutables && c.IsExecutable(name) {
		rb.Fail(CheckExecutable, ErrorTypeType, fmt.Sprintf("executable files are not allowed: .%s", parsed.Extension))
	} else {
		rb.Pass(CheckExecutable)
	}

	if len(v.constraints.AllowedKinds) > 0 {
		kind := rb.result.FileType.Kind
		if !containsKind(v.constraints.AllowedKinds, kind) {
			rb.Fail(CheckKind, ErrorTypeType, fmt.Sprintf("file type %s is not accepted; allowed types: %v", kind, v.constraints.AllowedKinds))
		} else {
			rb.Pass(CheckKind)
		}
	}

	if len(v.constraints.NamePatterns) > 0 {
		if !v.matchesPattern(name) {
			rb.Fail(CheckPattern, ErrorTypePattern, "filename doesn't match the required pattern")
		} else {
			rb.Pass(CheckPattern)
		}
	}

	if c.IsImage(name) && !c.Tables().Image.Contains(parsed.Extension) {
		rb.AddWarning("name ends like an image but its extension is not an image extension")
	}

	return rb.Build()
}

// GetConstraints returns the current validation constraints
func (v *FileValidator) GetConstraints() Constraints {
	return v.constraints
}

// Classifier returns the classifier the validator consults
func (v *FileValidator) Classifier() *classify.Classifier {
	return v.classifier
}

func (v *FileValidator) checkExtension(rb *ResultBuilder, parsed classify.Filename) {
	if !parsed.HasExtension {
		if v.constraints.RequireExtension || v.allowed.Len() > 0 {
			rb.Fail(CheckExtension, ErrorTypeExtension, "file must have an extension")
			return
		}
		rb.Pass(CheckExtension)
		return
	}

	ext := strings.ToLower(parsed.Extension)
	if v.blocked.Contains(ext) {
		rb.Fail(CheckExtension, ErrorTypeExtension, fmt.Sprintf("file extension .%s is blocked", ext))
		return
	}
	if v.allowed.Len() > 0 && !v.allowed.Contains(ext) {
		rb.Fail(CheckExtension, ErrorTypeExtension, fmt.Sprintf("file extension .%s is not allowed", ext))
		return
	}
	rb.Pass(CheckExtension)
}

// detectType resolves the family of name, falling back to the proprietary
// table which FileType does not consult.
func (v *FileValidator) detectType(name string) classify.FileType {
	c := v.classifier
	if ft := c.FileType(name); !ft.IsUnknown() {
		return ft
	}
	if c.IsProprietary(name) {
		ext, _ := c.Extension(name)
		if pt, ok := classify.ParsePropType(ext); ok {
			return classify.ProprietaryFile(pt)
		}
	}
	return classify.Unknown
}

func (v *FileValidator) matchesPattern(name string) bool {
	for _, g := range v.constraints.NamePatterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

func firstInvalid(name string, set []rune) (rune, bool) {
	for _, r := range name {
		for _, c := range set {
			if r == c {
				return r, true
			}
		}
	}
	return 0, false
}

func containsKind(kinds []classify.Kind, k classify.Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

// ValidateNames validates a batch of names and returns the failures keyed by name
func ValidateNames(validator Validator, names []string) map[string]error {
	failures := make(map[string]error)
	for _, name := range names {
		if err := validator.Validate(name); err != nil {
			failures[name] = err
		}
	}
	return failures
}
