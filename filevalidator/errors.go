package filevalidator

import (
	"errors"
	"fmt"
)

// ValidationErrorType groups checks by what part of a name they look at
type ValidationErrorType string

const (
	ErrorTypeFileName  ValidationErrorType = "filename"
	ErrorTypeExtension ValidationErrorType = "extension"
	ErrorTypeType      ValidationErrorType = "type"
	ErrorTypePattern   ValidationErrorType = "pattern"
)

// Check names, in the order a validator runs them
const (
	CheckFilename     = "filename"
	CheckLength       = "length"
	CheckCharacters   = "characters"
	CheckLeadingSpace = "leading-space"
	CheckEncoding     = "encoding"
	CheckExtension    = "extension"
	CheckExecutable   = "executable"
	CheckKind         = "kind"
	CheckPattern      = "pattern"
)

// ValidationError reports the check that rejected a name.
type ValidationError struct {
	Type ValidationErrorType

	// Check is the rule that failed, one of the Check* constants.
	Check string

	// Filename is the rejected name.
	Filename string

	Message string
}

func (e *ValidationError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("%s check failed: %s", e.Check, e.Message)
	}
	return fmt.Sprintf("%q failed %s check: %s", e.Filename, e.Check, e.Message)
}

// IsErrorOfType checks if an error is a ValidationError of the specified type
func IsErrorOfType(err error, errType ValidationErrorType) bool {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type == errType
	}
	return false
}

// GetErrorType returns the type of a ValidationError, or empty string if not a ValidationError
func GetErrorType(err error) ValidationErrorType {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Type
	}
	return ""
}

// FailedCheck returns the name of the check that produced err, or empty
// string if err is not a ValidationError
func FailedCheck(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Check
	}
	return ""
}
