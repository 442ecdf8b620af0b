package fileclass

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Optional classification categories
	EnableImage       bool `env:"FILECLASS_ENABLE_IMAGE,default:true"`
	EnableExecutable  bool `env:"FILECLASS_ENABLE_EXECUTABLE,default:true"`
	EnableProprietary bool `env:"FILECLASS_ENABLE_PROPRIETARY,default:false"`
	EnableFileType    bool `env:"FILECLASS_ENABLE_FILE_TYPE,default:true"`

	// Invalid characters, written as one string (e.g. "!@#"). Empty means the built-in set.
	InvalidChars string `env:"FILECLASS_INVALID_CHARS"`

	// Table overrides, comma-separated. Empty keeps the built-in table.
	ImageExtensions       string `env:"FILECLASS_IMAGE_EXTENSIONS"`
	ExecutableExtensions  string `env:"FILECLASS_EXECUTABLE_EXTENSIONS"`
	ProprietaryExtensions string `env:"FILECLASS_PROPRIETARY_EXTENSIONS"`

	// Upload gate
	AllowedExtensions string `env:"FILECLASS_ALLOWED_EXTENSIONS"` // comma-separated
	BlockedExtensions string `env:"FILECLASS_BLOCKED_EXTENSIONS"` // comma-separated, added to the defaults
	AllowedKinds      string `env:"FILECLASS_ALLOWED_KINDS"`      // comma-separated: image, executable, proprietary, unknown
	NamePatterns      string `env:"FILECLASS_NAME_PATTERNS"`      // comma-separated globs
	MaxNameLength     int    `env:"FILECLASS_MAX_NAME_LENGTH,default:255"`
	RequireExtension  bool   `env:"FILECLASS_REQUIRE_EXTENSION,default:false"`
	BlockExecutables  bool   `env:"FILECLASS_BLOCK_EXECUTABLES,default:true"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
