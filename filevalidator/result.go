package filevalidator

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobeaver/fileclass/classify"
)

// ValidationResult contains detailed information about a validation attempt
type ValidationResult struct {
	// Valid indicates whether the name passed all validations
	Valid bool

	// Filename is the validated name as given
	Filename string

	// Name is the part before the extension
	Name string

	// Extension is the parsed extension, case preserved
	Extension string

	// FileType is the family the name was classified into
	FileType classify.FileType

	// Ruleset is the fingerprint of the classifier that produced this result
	Ruleset uint64

	// Errors contains all validation errors encountered
	Errors []ValidationError

	// Warnings contains non-blocking observations
	Warnings []string

	// Duration is how long validation took
	Duration time.Duration

	// Checks contains details about each validation check performed
	Checks []CheckResult
}

// CheckResult represents the result of a single validation check
type CheckResult struct {
	Name    string // e.g., "length", "characters", "extension", "kind"
	Passed  bool   // whether this check passed
	Message string // human-readable result
}

// Error returns the first error if validation failed, nil if valid
func (r *ValidationResult) Error() error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// AllErrors returns all errors as a single combined error
func (r *ValidationResult) AllErrors() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}

	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

// Summary returns a human-readable summary of the validation
func (r *ValidationResult) Summary() string {
	if r.Valid {
		return fmt.Sprintf("✓ %s (%s) validated in %v",
			r.Filename,
			r.FileType,
			r.Duration.Round(time.Microsecond),
		)
	}

	return fmt.Sprintf("✗ %s failed: %s",
		r.Filename,
		r.Errors[0].Message,
	)
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// FailedChecks returns only the checks that failed
func (r *ValidationResult) FailedChecks() []CheckResult {
	var failed []CheckResult
	for _, check := range r.Checks {
		if !check.Passed {
			failed = append(failed, check)
		}
	}
	return failed
}

// PassedChecks returns only the checks that passed
func (r *ValidationResult) PassedChecks() []CheckResult {
	var passed []CheckResult
	for _, check := range r.Checks {
		if check.Passed {
			passed = append(passed, check)
		}
	}
	return passed
}

// ResultBuilder helps construct ValidationResult
type ResultBuilder struct {
	result    ValidationResult
	startTime time.Time
}

// NewResultBuilder creates a new result builder
func NewResultBuilder(filename string) *ResultBuilder {
	return &ResultBuilder{
		result: ValidationResult{
			Valid:    true, // Assume valid until proven otherwise
			Filename: filename,
			Name:     filename,
			Checks:   make([]CheckResult, 0),
		},
		startTime: time.Now(),
	}
}

// SetParts records the parsed name and extension
func (b *ResultBuilder) SetParts(name, ext string) *ResultBuilder {
	b.result.Name = name
	b.result.Extension = ext
	return b
}

// SetFileType records the detected family
func (b *ResultBuilder) SetFileType(ft classify.FileType) *ResultBuilder {
	b.result.FileType = ft
	return b
}

// SetRuleset records the classifier fingerprint
func (b *ResultBuilder) SetRuleset(fingerprint uint64) *ResultBuilder {
	b.result.Ruleset = fingerprint
	return b
}

// AddCheck adds a check result
func (b *ResultBuilder) AddCheck(name string, passed bool, message string) *ResultBuilder {
	b.result.Checks = append(b.result.Checks, CheckResult{
		Name:    name,
		Passed:  passed,
		Message: message,
	})
	if !passed {
		b.result.Valid = false
	}
	return b
}

// Pass records a passing check
func (b *ResultBuilder) Pass(name string) *ResultBuilder {
	return b.AddCheck(name, true, "ok")
}

// Fail records a failing check together with its error
func (b *ResultBuilder) Fail(check string, errType ValidationErrorType, message string) *ResultBuilder {
	b.AddCheck(check, false, message)
	b.result.Errors = append(b.result.Errors, ValidationError{
		Type:     errType,
		Check:    check,
		Filename: b.result.Filename,
		Message:  message,
	})
	return b
}

// AddWarning adds a warning (non-blocking)
func (b *ResultBuilder) AddWarning(message string) *ResultBuilder {
	b.result.Warnings = append(b.result.Warnings, message)
	return b
}

// Build finalizes and returns the ValidationResult
func (b *ResultBuilder) Build() *ValidationResult {
	b.result.Duration = time.Since(b.startTime)
	return &b.result
}
