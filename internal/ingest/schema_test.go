package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSchemaEmbedded(t *testing.T) {
	s, err := LoadSchema("")
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if s.Thresholds.FieldMatch != DefaultFieldMatchThreshold {
		t.Errorf("field_match = %v", s.Thresholds.FieldMatch)
	}
	if s.Thresholds.ProjectMatch != DefaultProjectMatchThreshold {
		t.Errorf("project_match = %v", s.Thresholds.ProjectMatch)
	}
	if len(s.ProjectFields) == 0 || len(s.TaskFields) == 0 {
		t.Fatal("embedded registry has empty field lists")
	}
	if s.ProjectFields[0].Target != "id" {
		t.Errorf("first project target = %q", s.ProjectFields[0].Target)
	}
}

func TestLoadSchemaPathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	override := `thresholds:
  field_match: 0.8
project_fields:
  - target: name
task_fields:
  - target: title
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSchema(path)
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if s.Thresholds.FieldMatch != 0.8 {
		t.Errorf("field_match = %v, want override 0.8", s.Thresholds.FieldMatch)
	}
	// The unset threshold falls back to its default.
	if s.Thresholds.ProjectMatch != DefaultProjectMatchThreshold {
		t.Errorf("project_match = %v", s.Thresholds.ProjectMatch)
	}
	if len(s.ProjectFields) != 1 || s.ProjectFields[0].Target != "name" {
		t.Errorf("project_fields = %+v", s.ProjectFields)
	}
}

func TestLoadSchemaRejectsBadRegistry(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing task fields", "project_fields:\n  - target: name\n"},
		{"empty target", "project_fields:\n  - target: name\ntask_fields:\n  - aliases: [x]\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "schema.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadSchema(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSchemaMissingOverrideFile(t *testing.T) {
	if _, err := LoadSchema(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing override file")
	}
}
