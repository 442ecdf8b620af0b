package filevalidator

import (
	"github.com/gobeaver/fileclass/classify"
	"github.com/gobwas/glob"
)

// Constraints defines the configuration for filename validation
type Constraints struct {
	// Classifier answers the character, extension and family questions.
	// If nil, classify.NewDefault() is used.
	Classifier *classify.Classifier

	// MaxNameLength is the maximum allowed length in characters (including extension)
	// If set to 0, no length limit will be enforced
	MaxNameLength int

	// AllowedExts is a list of allowed extensions (e.g., "jpg", "pdf"); a leading dot is ignored
	// If empty, all extensions are allowed unless blocked by BlockedExts
	AllowedExts []string

	// BlockedExts is a list of blocked extensions; a leading dot is ignored
	// These extensions will be blocked regardless of AllowedExts configuration
	BlockedExts []string

	// RequireExtension enforces that names must have an extension
	RequireExtension bool

	// BlockExecutables rejects names the classifier reports as executables
	BlockExecutables bool

	// AllowedKinds restricts names to the given file families
	// If empty, every family (including unknown) is allowed
	AllowedKinds []classify.Kind

	// NamePatterns are glob patterns; when set, a name must match at least one
	NamePatterns []glob.Glob
}

// DefaultConstraints creates a new set of constraints with sensible defaults
func DefaultConstraints() Constraints {
	return Constraints{
		MaxNameLength:    255,
		BlockedExts:      []string{"cmd", "sh", "php", "phtml", "pl", "cgi", "dll", "com", "scr", "msi", "jar", "pif", "vb", "vbs", "vbe", "js", "jse", "ws", "wsf", "wsh", "ps1", "psm1", "lnk", "inf", "reg", "docm", "xlsm", "pptm"},
		RequireExtension: true,
		BlockExecutables: true,
	}
}

// ImageOnlyConstraints creates constraints that only allow image names with sensible defaults
func ImageOnlyConstraints() Constraints {
	constraints := DefaultConstraints()
	constraints.AllowedKinds = []classify.Kind{classify.KindImage}
	return constraints
}

// DesignOnlyConstraints creates constraints that only allow proprietary design files
// (Photoshop, Illustrator, InDesign)
func DesignOnlyConstraints() Constraints {
	constraints := DefaultConstraints()
	constraints.AllowedKinds = []classify.Kind{classify.KindProprietary}
	return constraints
}
