package ingest

import (
	"testing"

	"github.com/Callmewookie65/planboard/internal/models"
)

func testRoster() []models.Project {
	return []models.Project{
		{ID: "101", Name: "Redesign Strony Głównej"},
		{ID: "102", Name: "Mobile App"},
		{ID: "103", Name: "Mobile Web App"},
	}
}

func TestMatchProjectByID(t *testing.T) {
	extracted := models.Project{ID: "102", Name: "Something Unrelated"}

	matches := MatchProject(extracted, testRoster(), DefaultProjectMatchThreshold)
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].ProjectID != "102" || matches[0].Similarity != 1.0 {
		t.Errorf("first match = %+v, want id 102 at 1.0", matches[0])
	}
}

func TestMatchProjectByName(t *testing.T) {
	// ASCII transliteration of a diacritic roster name still lands the match.
	extracted := models.Project{ID: "9999", Name: "Redesign Strony Glownej"}

	matches := MatchProject(extracted, testRoster(), DefaultProjectMatchThreshold)
	if len(matches) != 1 {
		t.Fatalf("matches = %+v, want exactly one", matches)
	}
	if matches[0].ProjectID != "101" {
		t.Errorf("matched %q, want 101", matches[0].ProjectID)
	}
	if matches[0].Similarity <= DefaultProjectMatchThreshold {
		t.Errorf("similarity %v not above threshold", matches[0].Similarity)
	}
}

func TestMatchProjectOrdering(t *testing.T) {
	extracted := models.Project{Name: "Mobile App"}

	matches := MatchProject(extracted, testRoster(), DefaultProjectMatchThreshold)
	if len(matches) != 2 {
		t.Fatalf("matches = %+v, want two", matches)
	}
	if matches[0].ProjectID != "102" || matches[0].Similarity != 1.0 {
		t.Errorf("exact name should rank first, got %+v", matches[0])
	}
	if matches[1].ProjectID != "103" || matches[1].Similarity >= matches[0].Similarity {
		t.Errorf("token-overlap hit should rank second, got %+v", matches[1])
	}
}

func TestMatchProjectDedupByID(t *testing.T) {
	// The id hit also matches by name; it must appear once.
	extracted := models.Project{ID: "102", Name: "Mobile App"}

	matches := MatchProject(extracted, testRoster(), DefaultProjectMatchThreshold)
	counts := map[string]int{}
	for _, m := range matches {
		counts[m.ProjectID]++
	}
	if counts["102"] != 1 {
		t.Errorf("project 102 appears %d times: %+v", counts["102"], matches)
	}
}

func TestMatchProjectBelowThreshold(t *testing.T) {
	extracted := models.Project{ID: "9999", Name: "Quarterly Audit"}

	if matches := MatchProject(extracted, testRoster(), DefaultProjectMatchThreshold); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestMatchReferences(t *testing.T) {
	refs := []string{"103", "Redesign Strony Glownej", "Unknown Thing"}

	matches := MatchReferences(refs, testRoster(), DefaultProjectMatchThreshold)
	if len(matches) != 2 {
		t.Fatalf("matches = %+v, want two", matches)
	}
	// The id short-circuit scores 1.0 and sorts first.
	if matches[0].ProjectID != "103" || matches[0].Similarity != 1.0 {
		t.Errorf("first match = %+v, want id 103 at 1.0", matches[0])
	}
	if matches[1].ProjectID != "101" {
		t.Errorf("second match = %+v, want 101", matches[1])
	}
}

func TestMatchReferencesDedup(t *testing.T) {
	refs := []string{"Mobile App", "102"}

	matches := MatchReferences(refs, testRoster(), DefaultProjectMatchThreshold)
	counts := map[string]int{}
	for _, m := range matches {
		counts[m.ProjectID]++
	}
	if counts["102"] != 1 {
		t.Errorf("project 102 appears %d times: %+v", counts["102"], matches)
	}
}
