package ingest

import (
	"sort"

	"github.com/Callmewookie65/planboard/internal/models"
)

// ProcessingResult is the tagged output of one document run: exactly one of
// ProjectData, TaskData or BudgetData is populated, discriminated by
// DocumentType. Confidence reflects how much structural evidence supported
// the classification and how much of the target schema was actually mapped;
// it is a heuristic, not a probability.
type ProcessingResult struct {
	DocumentType     DocumentType     `json:"documentType"`
	Confidence       float64          `json:"confidence"`
	ProjectData      *models.Project  `json:"projectData,omitempty"`
	TaskData         []models.Task    `json:"taskData,omitempty"`
	BudgetData       models.BudgetMap `json:"budgetData,omitempty"`
	PossibleProjects []string         `json:"possibleProjects,omitempty"`
}

// Engine wires the classifier, field mapper and extractors together. It is
// stateless over its inputs: concurrent Process calls are safe.
type Engine struct {
	schema   *Schema
	projects *ProjectExtractor
	tasks    *TaskExtractor
}

func NewEngine(schema *Schema) *Engine {
	return &Engine{
		schema:   schema,
		projects: NewProjectExtractor(schema),
		tasks:    NewTaskExtractor(schema),
	}
}

// Process classifies an already-parsed document and routes it to the
// matching extractor. Malformed data never errors: an unclassifiable
// document comes back as unknown with confidence 0, and partially mappable
// records come back with absent fields omitted and a lower confidence.
func (e *Engine) Process(fileName string, records []RawRecord) ProcessingResult {
	docType, signal := Classify(fileName, records)
	res := ProcessingResult{DocumentType: docType}
	if docType == DocTypeUnknown || len(records) == 0 {
		return res
	}

	coverage := 0.0
	switch docType {
	case DocTypeProject:
		p, mapping := e.projects.Extract(records[0])
		res.ProjectData = &p
		coverage = mappedFraction(mapping, e.schema.ProjectFields)
	case DocTypeTask:
		res.TaskData, res.PossibleProjects, coverage = e.tasks.ExtractAll(records)
	case DocTypeBudget:
		budgets := ExtractBudgets(records)
		if len(budgets) > 0 {
			res.BudgetData = budgets
		}
		res.PossibleProjects = budgetReferences(budgets)
		coverage = float64(len(budgets)) / float64(len(records))
	}

	res.Confidence = 0.5*signal + 0.5*coverage
	return res
}

// Match ranks roster candidates for a processed document. The roster is a
// caller-owned snapshot; the engine never merges results into it.
func (e *Engine) Match(res ProcessingResult, roster []models.Project) []MatchCandidate {
	threshold := e.schema.Thresholds.ProjectMatch
	switch res.DocumentType {
	case DocTypeProject:
		if res.ProjectData == nil {
			return nil
		}
		return MatchProject(*res.ProjectData, roster, threshold)
	case DocTypeTask, DocTypeBudget:
		return MatchReferences(res.PossibleProjects, roster, threshold)
	default:
		return nil
	}
}

// mappedFraction is the share of target fields the mapping resolved. The
// budget slot is not part of the scalar schema and does not count.
func mappedFraction(mapping FieldMapping, fields []FieldSpec) float64 {
	if len(fields) == 0 {
		return 0
	}
	mapped := 0
	for _, f := range fields {
		if _, ok := mapping[f.Target]; ok {
			mapped++
		}
	}
	return float64(mapped) / float64(len(fields))
}

// budgetReferences lists the budget map's identifiers in a stable order for
// downstream matching.
func budgetReferences(budgets models.BudgetMap) []string {
	if len(budgets) == 0 {
		return nil
	}
	refs := make([]string, 0, len(budgets))
	for ident := range budgets {
		refs = append(refs, ident)
	}
	sort.Strings(refs)
	return mergeUniqueFold(nil, refs)
}
