package ingest

import (
	"strings"
)

// FieldMapping resolves canonical target field names to the source key that
// supplies each field's value. Targets with no sufficiently confident source
// key are absent, never an error.
type FieldMapping map[string]string

// BudgetTarget is the mapping slot reserved for nested budget objects, which
// bypass the scalar per-field loop entirely.
const BudgetTarget = "budget"

// MapFields discovers, for each target field, the best-matching source key
// in rec. Strategy order per field: exact key match on the target name,
// folded match on the target name and its declared aliases (so "Due Date"
// still satisfies dueDate), then the best Similarity score over all source
// keys, kept only when it exceeds threshold. Source keys are visited in
// sorted order so repeated runs over the same record yield an identical
// mapping.
func MapFields(rec RawRecord, fields []FieldSpec, threshold float64) FieldMapping {
	mapping := make(FieldMapping, len(fields))
	keys := sortedKeys(rec)

	for _, f := range fields {
		if _, ok := rec[f.Target]; ok {
			mapping[f.Target] = f.Target
			continue
		}
		if src, ok := matchAlias(keys, append([]string{f.Target}, f.Aliases...)); ok {
			mapping[f.Target] = src
			continue
		}

		best := ""
		bestScore := threshold
		for _, k := range keys {
			if score := Similarity(f.Target, k); score > bestScore {
				best, bestScore = k, score
			}
		}
		if best != "" {
			mapping[f.Target] = best
		}
	}

	// Nested-object budgets cannot be matched as scalars; record the key so
	// extractors can descend into it.
	for _, k := range keys {
		if rec[k].Kind == KindObject && strings.Contains(foldKey(k), "budget") {
			mapping[BudgetTarget] = k
			break
		}
	}

	return mapping
}

func matchAlias(keys []string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		fa := foldKey(alias)
		for _, k := range keys {
			if k == alias || foldKey(k) == fa {
				return k, true
			}
		}
	}
	return "", false
}
