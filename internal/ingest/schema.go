package ingest

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config/schema.yaml
var schemaYAML embed.FS

// Default similarity cutoffs. Chosen empirically against real import files;
// overridable in schema.yaml pending calibration on a larger corpus.
const (
	DefaultFieldMatchThreshold   = 0.5
	DefaultProjectMatchThreshold = 0.6
)

// FieldSpec declares one canonical target field and the source key aliases
// tried before similarity scoring kicks in.
type FieldSpec struct {
	Target  string   `yaml:"target"`
	Aliases []string `yaml:"aliases,omitempty"`
}

// Thresholds carries the two similarity cutoffs used by the mapper and the
// matcher.
type Thresholds struct {
	FieldMatch   float64 `yaml:"field_match,omitempty"`
	ProjectMatch float64 `yaml:"project_match,omitempty"`
}

// Schema is the target-schema registry: which canonical fields each document
// type is extracted into, plus the similarity thresholds.
type Schema struct {
	Thresholds    Thresholds  `yaml:"thresholds"`
	ProjectFields []FieldSpec `yaml:"project_fields"`
	TaskFields    []FieldSpec `yaml:"task_fields"`
}

// LoadSchema reads the embedded schema.yaml and returns the registry.
// The path parameter allows a filesystem override for local experiments.
func LoadSchema(path string) (*Schema, error) {
	data, err := schemaYAML.ReadFile("config/schema.yaml")
	if path != "" {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if s.Thresholds.FieldMatch == 0 {
		s.Thresholds.FieldMatch = DefaultFieldMatchThreshold
	}
	if s.Thresholds.ProjectMatch == 0 {
		s.Thresholds.ProjectMatch = DefaultProjectMatchThreshold
	}

	// An empty target list is a programmer error, not malformed data.
	if len(s.ProjectFields) == 0 || len(s.TaskFields) == 0 {
		return nil, fmt.Errorf("schema registry is missing target field lists")
	}
	for _, fields := range [][]FieldSpec{s.ProjectFields, s.TaskFields} {
		for _, f := range fields {
			if f.Target == "" {
				return nil, fmt.Errorf("schema registry contains a field with no target name")
			}
		}
	}

	return &s, nil
}
