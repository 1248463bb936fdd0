package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/Callmewookie65/planboard/internal/models"
)

// TaskExtractor builds canonical tasks from raw records.
type TaskExtractor struct {
	fields    []FieldSpec
	threshold float64
}

func NewTaskExtractor(schema *Schema) *TaskExtractor {
	return &TaskExtractor{
		fields:    schema.TaskFields,
		threshold: schema.Thresholds.FieldMatch,
	}
}

// ExtractAll builds one task per record. It also collects every distinct
// project reference found under the reference key columns across all rows —
// separate from per-task project assignment — and reports the average
// fraction of the task schema that was actually mapped.
func (e *TaskExtractor) ExtractAll(records []RawRecord) ([]models.Task, []string, float64) {
	tasks := make([]models.Task, 0, len(records))
	var refs []string
	var coverageSum float64

	for _, rec := range records {
		mapping := MapFields(rec, e.fields, e.threshold)
		get := func(target string) Value {
			if src, ok := mapping[target]; ok {
				return rec[src]
			}
			return NullValue()
		}

		t := models.Task{
			ID:          cleanText(get("id").Text()),
			Title:       cleanText(get("title").Text()),
			Description: htmlToText(get("description").Text()),
			Status:      ToEnum(get("status"), models.TaskStatuses, models.TaskTodo),
			Priority:    ToEnum(get("priority"), models.TaskPriorities, models.PriorityMedium),
			Project:     cleanText(get("project").Text()),
			DueDate:     ToISODate(get("dueDate")),
			Assignee:    parseAssignee(get("assignee")),
		}
		if t.ID == "" {
			t.ID = syntheticID()
		}

		tasks = append(tasks, t)
		refs = mergeUniqueFold(refs, collectReferences(rec))
		coverageSum += mappedFraction(mapping, e.fields)
	}

	coverage := 0.0
	if len(records) > 0 {
		coverage = coverageSum / float64(len(records))
	}
	return tasks, refs, coverage
}

// collectReferences gathers project name/identifier values from the
// reference key columns of a single record.
func collectReferences(rec RawRecord) []string {
	var out []string
	keys := sortedKeys(rec)
	for _, cand := range referenceKeys {
		fc := foldKey(cand)
		for _, k := range keys {
			if foldKey(k) != fc {
				continue
			}
			if s := cleanText(rec[k].Text()); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// parseAssignee accepts either a bare name string or an object carrying
// id/name/avatar fields. A missing avatar is derived from the name's
// initials.
func parseAssignee(v Value) *models.Assignee {
	switch v.Kind {
	case KindString:
		name := cleanText(v.Str)
		if name == "" {
			return nil
		}
		return &models.Assignee{Name: name, AvatarInitials: initials(name)}
	case KindObject:
		a := models.Assignee{
			ID:             cleanText(v.Obj["id"].Text()),
			Name:           cleanText(v.Obj["name"].Text()),
			AvatarInitials: cleanText(v.Obj["avatar"].Text()),
		}
		if a.ID == "" && a.Name == "" && a.AvatarInitials == "" {
			return nil
		}
		if a.AvatarInitials == "" {
			a.AvatarInitials = initials(a.Name)
		}
		return &a
	default:
		return nil
	}
}

// initials is the first letter of the single token, or the first letters of
// the first and last tokens, upper-cased.
func initials(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(tokens[0])
	if len(tokens) == 1 {
		return strings.ToUpper(string(first))
	}
	last, _ := utf8.DecodeRuneInString(tokens[len(tokens)-1])
	return strings.ToUpper(string(first) + string(last))
}
