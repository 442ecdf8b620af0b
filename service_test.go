package fileclass

import (
	"errors"
	"os"
	"testing"

	"github.com/gobeaver/fileclass/classify"
	"github.com/gobeaver/fileclass/filevalidator"
)

func defaultConfig() *Config {
	return &Config{
		EnableImage:      true,
		EnableExecutable: true,
		EnableFileType:   true,
		MaxNameLength:    255,
		BlockExecutables: true,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "custom invalid chars", mutate: func(c *Config) { c.InvalidChars = "~" }},
		{name: "allowed kinds", mutate: func(c *Config) { c.AllowedKinds = "image, proprietary" }},
		{name: "unknown kind", mutate: func(c *Config) { c.AllowedKinds = "video" }, wantErr: true},
		{name: "bad glob", mutate: func(c *Config) { c.NamePatterns = "[oops" }, wantErr: true},
		{
			name:    "unresolvable image table",
			mutate:  func(c *Config) { c.ImageExtensions = "jpg,foo" },
			wantErr: true,
		},
		{
			name: "unresolvable table without file types",
			mutate: func(c *Config) {
				c.ImageExtensions = "jpg,foo"
				c.EnableFileType = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			svc, err := New(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("New() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if svc.Classifier() == nil || svc.Validator() == nil {
				t.Error("New() returned a service without classifier or validator")
			}
		})
	}
}

func TestService_Features(t *testing.T) {
	cfg := defaultConfig()
	cfg.EnableImage = false
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if svc.Classifier().IsImage("photo.jpg") {
		t.Error("images were disabled in config")
	}
	if got := svc.Classify("photo.jpg"); got != classify.Unknown {
		t.Errorf("Classify(photo.jpg) = %v, want unknown", got)
	}
	if got := svc.Classify("setup.exe"); got != classify.ExecutableFile(classify.EXE) {
		t.Errorf("Classify(setup.exe) = %v, want executable(EXE)", got)
	}
}

func TestService_Validate(t *testing.T) {
	cfg := defaultConfig()
	cfg.AllowedExtensions = "jpg, png"
	cfg.BlockedExtensions = "png"
	cfg.NamePatterns = "avatar-*"
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name    string
		errType filevalidator.ValidationErrorType
	}{
		{"avatar-1.jpg", ""},
		{"avatar-1.png", filevalidator.ErrorTypeExtension},
		{"banner.jpg", filevalidator.ErrorTypePattern},
		{"avatar-1.gif", filevalidator.ErrorTypeExtension},
		{"avatar$.jpg", filevalidator.ErrorTypeFileName},
	}

	for _, tt := range tests {
		err := svc.Validate(tt.name)
		if tt.errType == "" {
			if err != nil {
				t.Errorf("Validate(%q) error = %v, want nil", tt.name, err)
			}
			continue
		}
		if !filevalidator.IsErrorOfType(err, tt.errType) {
			t.Errorf("Validate(%q) error = %v, want %s", tt.name, err, tt.errType)
		}
	}
}

func TestService_Inspect(t *testing.T) {
	cfg := defaultConfig()
	cfg.EnableProprietary = true
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	r := svc.Inspect("Cover.INDD")
	if r.Name != "Cover" || r.Extension != "INDD" || !r.HasExtension {
		t.Errorf("parts = %q %q %v", r.Name, r.Extension, r.HasExtension)
	}
	if !r.Proprietary || r.Image || r.Executable {
		t.Errorf("flags = image:%v executable:%v proprietary:%v", r.Image, r.Executable, r.Proprietary)
	}
	if r.Kind != "proprietary" || r.FileType != "proprietary(INDD)" {
		t.Errorf("Kind = %q, FileType = %q", r.Kind, r.FileType)
	}
	if !r.Accepted || !r.ValidName {
		t.Errorf("Cover.INDD should be accepted, problems: %v", r.Problems)
	}

	r = svc.Inspect("  not$allowed")
	if r.ValidName || r.Accepted {
		t.Error("  not$allowed should be rejected")
	}
	if len(r.Problems) == 0 {
		t.Error("expected problems for a rejected name")
	}
	if len(r.FailedChecks) != len(r.Problems) || r.FailedChecks[0] != filevalidator.CheckCharacters {
		t.Errorf("FailedChecks = %v, want characters first", r.FailedChecks)
	}
	if r.Ruleset != svc.Classifier().Fingerprint() {
		t.Error("Ruleset should be the classifier fingerprint")
	}
}

func TestInitAndDefault(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Init(defaultConfig()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	svc, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if svc == nil {
		t.Fatal("Default() returned nil")
	}

	// Init is only effective once.
	bad := defaultConfig()
	bad.AllowedKinds = "video"
	if err := Init(bad); err != nil {
		t.Errorf("second Init() error = %v, want nil", err)
	}
	again, _ := Default()
	if again != svc {
		t.Error("Default() should return the first instance")
	}
}

func TestInitFromEnvError(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	os.Setenv("BEAVER_FILECLASS_ALLOWED_KINDS", "video")
	t.Cleanup(func() { os.Unsetenv("BEAVER_FILECLASS_ALLOWED_KINDS") })

	if _, err := Default(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Default() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("BEAVER_FILECLASS_ALLOWED_KINDS", "image")
	t.Cleanup(func() { os.Unsetenv("BEAVER_FILECLASS_ALLOWED_KINDS") })

	svc, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv() error = %v", err)
	}
	if err := svc.Validate("notes.txt"); !filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeType) {
		t.Errorf("Validate(notes.txt) error = %v, want type error", err)
	}
	if err := svc.Validate("photo.webp"); err != nil {
		t.Errorf("Validate(photo.webp) error = %v, want nil", err)
	}
}

func TestWithPrefix(t *testing.T) {
	os.Setenv("UPLOADS_FILECLASS_MAX_NAME_LENGTH", "8")
	t.Cleanup(func() { os.Unsetenv("UPLOADS_FILECLASS_MAX_NAME_LENGTH") })

	svc, err := WithPrefix("UPLOADS_").New()
	if err != nil {
		t.Fatalf("WithPrefix().New() error = %v", err)
	}
	if svc.Config().MaxNameLength != 8 {
		t.Errorf("MaxNameLength = %d, want 8", svc.Config().MaxNameLength)
	}
	if err := svc.Validate("long-name.png"); !filevalidator.IsErrorOfType(err, filevalidator.ErrorTypeFileName) {
		t.Errorf("Validate(long-name.png) error = %v, want filename error", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"a", []string{"a"}},
		{" a , b ,, c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		got := splitList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
}
