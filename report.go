package fileclass

import (
	"github.com/gobeaver/fileclass/classify"
)

// Report is a flat description of everything the service knows about a name.
type Report struct {
	Filename     string   `json:"filename"`
	Name         string   `json:"name"`
	Extension    string   `json:"extension,omitempty"`
	HasExtension bool     `json:"has_extension"`
	ValidName    bool     `json:"valid_name"`
	Image        bool     `json:"image"`
	Executable   bool     `json:"executable"`
	Proprietary  bool     `json:"proprietary"`
	Kind         string   `json:"kind"`
	FileType     string   `json:"file_type"`
	ContentType  string   `json:"content_type"`
	Accepted     bool     `json:"accepted"`
	Problems     []string `json:"problems,omitempty"`
	FailedChecks []string `json:"failed_checks,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	Ruleset      uint64   `json:"ruleset"`
}

// Inspect classifies name and runs it through the upload gate.
func (s *Service) Inspect(name string) Report {
	c := s.classifier
	f := c.Parse(name)
	result := s.validator.ValidateResult(name)

	r := Report{
		Filename:     name,
		Name:         f.Name,
		Extension:    f.Extension,
		HasExtension: f.HasExtension,
		ValidName:    c.IsValidFilename(name),
		Image:        c.IsImage(name),
		Executable:   c.IsExecutable(name),
		Proprietary:  c.IsProprietary(name),
		Kind:         result.FileType.Kind.String(),
		FileType:     result.FileType.String(),
		ContentType:  ContentType(result.FileType, f.Extension),
		Accepted:     result.Valid,
		Warnings:     result.Warnings,
		Ruleset:      c.Fingerprint(),
	}
	for _, e := range result.Errors {
		r.Problems = append(r.Problems, e.Message)
		r.FailedChecks = append(r.FailedChecks, e.Check)
	}
	return r
}

// Classify returns the FileType of name.
func (s *Service) Classify(name string) classify.FileType {
	return s.classifier.FileType(name)
}
