package ingest

import (
	"sort"

	"github.com/Callmewookie65/planboard/internal/models"
)

// MatchCandidate is one ranked roster match.
type MatchCandidate struct {
	ProjectID  string  `json:"projectId"`
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// MatchProject ranks roster candidates for an extracted project. An id
// equality hit is added first with similarity 1.0; then every roster project
// whose name similarity exceeds threshold is appended in descending order.
// Candidates are deduplicated by project id.
func MatchProject(extracted models.Project, roster []models.Project, threshold float64) []MatchCandidate {
	var out []MatchCandidate
	seen := make(map[string]struct{})

	if extracted.ID != "" {
		for _, p := range roster {
			if p.ID == extracted.ID {
				out = append(out, MatchCandidate{ProjectID: p.ID, Name: p.Name, Similarity: 1.0})
				seen[p.ID] = struct{}{}
				break
			}
		}
	}

	if extracted.Name != "" {
		var named []MatchCandidate
		for _, p := range roster {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			if score := Similarity(extracted.Name, p.Name); score > threshold {
				named = append(named, MatchCandidate{ProjectID: p.ID, Name: p.Name, Similarity: score})
				seen[p.ID] = struct{}{}
			}
		}
		sort.SliceStable(named, func(i, j int) bool {
			return named[i].Similarity > named[j].Similarity
		})
		out = append(out, named...)
	}

	return out
}

// MatchReferences ranks roster candidates for bare project references pulled
// out of task and budget documents. A reference equal to a roster project's
// id short-circuits to similarity 1.0 before name similarity is consulted.
func MatchReferences(refs []string, roster []models.Project, threshold float64) []MatchCandidate {
	var out []MatchCandidate
	seen := make(map[string]struct{})

	for _, ref := range refs {
		for _, p := range roster {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			score := 0.0
			if p.ID != "" && p.ID == ref {
				score = 1.0
			} else {
				score = Similarity(ref, p.Name)
			}
			if score < 1.0 && score <= threshold {
				continue
			}
			out = append(out, MatchCandidate{ProjectID: p.ID, Name: p.Name, Similarity: score})
			seen[p.ID] = struct{}{}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}
