package fileclass

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobeaver/fileclass/classify"
	"github.com/gobeaver/fileclass/filevalidator"
	"github.com/gobwas/glob"
)

// Global instance
var (
	defaultService *Service
	defaultOnce    sync.Once
	defaultErr     error
)

// Service bundles a classifier and the upload gate built on it
type Service struct {
	cfg        Config
	classifier *classify.Classifier
	validator  *filevalidator.FileValidator
}

// Builder provides a way to create Service instances with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Service instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Service instance using the builder's prefix
func (b *Builder) New() (*Service, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global service instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultService, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a new service instance with given config
func New(cfg *Config) (*Service, error) {
	classifier, err := createClassifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	constraints, err := createConstraints(cfg, classifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Service{
		cfg:        *cfg,
		classifier: classifier,
		validator:  filevalidator.New(constraints),
	}, nil
}

// createClassifier builds the classifier from the feature toggles and table overrides
func createClassifier(cfg *Config) (*classify.Classifier, error) {
	opts := []classify.Option{
		classify.WithFeatures(classify.Features{
			Image:       cfg.EnableImage,
			Executable:  cfg.EnableExecutable,
			Proprietary: cfg.EnableProprietary,
			FileType:    cfg.EnableFileType,
		}),
	}

	if cfg.InvalidChars != "" {
		opts = append(opts, classify.WithInvalidChars([]rune(cfg.InvalidChars)))
	}
	if exts := splitList(cfg.ImageExtensions); len(exts) > 0 {
		opts = append(opts, classify.WithImageTable(classify.NewTable(exts...)))
	}
	if exts := splitList(cfg.ExecutableExtensions); len(exts) > 0 {
		opts = append(opts, classify.WithExecutableTable(classify.NewTable(exts...)))
	}
	if exts := splitList(cfg.ProprietaryExtensions); len(exts) > 0 {
		opts = append(opts, classify.WithProprietaryTable(classify.NewTable(exts...)))
	}

	return classify.New(opts...)
}

// createConstraints creates the upload gate constraints from config
func createConstraints(cfg *Config, classifier *classify.Classifier) (filevalidator.Constraints, error) {
	// Start with default constraints
	constraints := filevalidator.DefaultConstraints()
	constraints.Classifier = classifier
	constraints.MaxNameLength = cfg.MaxNameLength
	constraints.RequireExtension = cfg.RequireExtension
	constraints.BlockExecutables = cfg.BlockExecutables

	constraints.AllowedExts = splitList(cfg.AllowedExtensions)

	// Append to existing blocked extensions
	constraints.BlockedExts = append(constraints.BlockedExts, splitList(cfg.BlockedExtensions)...)

	for _, name := range splitList(cfg.AllowedKinds) {
		kind, ok := classify.ParseKind(name)
		if !ok {
			return constraints, fmt.Errorf("unknown kind: %s", name)
		}
		constraints.AllowedKinds = append(constraints.AllowedKinds, kind)
	}

	for _, pattern := range splitList(cfg.NamePatterns) {
		g, err := glob.Compile(pattern)
		if err != nil {
			return constraints, fmt.Errorf("name pattern %q: %w", pattern, err)
		}
		constraints.NamePatterns = append(constraints.NamePatterns, g)
	}

	return constraints, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Config returns a copy of the configuration the service was built from
func (s *Service) Config() Config {
	return s.cfg
}

// Classifier returns the service's classifier
func (s *Service) Classifier() *classify.Classifier {
	return s.classifier
}

// Validator returns the service's upload gate
func (s *Service) Validator() *filevalidator.FileValidator {
	return s.validator
}

// Validate checks name against the upload gate
func (s *Service) Validate(name string) error {
	return s.validator.Validate(name)
}

// Guard wraps fs so that writes with rejected names never reach it
func (s *Service) Guard(fs FileWriter) *GuardedFileSystem {
	return NewGuardedFileSystem(fs, s.validator)
}

// Default returns the global instance, initializing if needed with error handling
func Default() (*Service, error) {
	if defaultService == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultService, nil
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv() (*Service, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultService = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
