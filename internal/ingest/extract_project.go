package ingest

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/Callmewookie65/planboard/internal/models"
)

// ProjectExtractor builds canonical projects from raw records.
type ProjectExtractor struct {
	fields    []FieldSpec
	threshold float64
}

func NewProjectExtractor(schema *Schema) *ProjectExtractor {
	return &ProjectExtractor{
		fields:    schema.ProjectFields,
		threshold: schema.Thresholds.FieldMatch,
	}
}

// Extract applies the discovered field mapping plus the coercers to build
// one canonical project. Malformed cells degrade to defaults; the mapping is
// returned so the caller can score schema coverage.
func (e *ProjectExtractor) Extract(rec RawRecord) (models.Project, FieldMapping) {
	mapping := MapFields(rec, e.fields, e.threshold)
	get := func(target string) Value {
		if src, ok := mapping[target]; ok {
			return rec[src]
		}
		return NullValue()
	}

	p := models.Project{
		ID:             cleanText(get("id").Text()),
		Name:           cleanText(get("name").Text()),
		Client:         cleanText(get("client").Text()),
		Status:         ToEnum(get("status"), models.ProjectStatuses, models.StatusActive),
		Progress:       clampProgress(ToNumber(get("progress"))),
		Description:    htmlToText(get("description").Text()),
		ProjectManager: cleanText(get("projectManager").Text()),
		RiskLevel:      ToEnum(get("riskLevel"), models.RiskLevels, models.RiskMedium),
		StartDate:      ToISODate(get("startDate")),
		EndDate:        ToISODate(get("endDate")),
		HoursWorked:    ToNumber(get("hoursWorked")),
		EstimatedTime:  ToNumber(get("estimatedTime")),
		Margin:         ToNumber(get("margin")),
	}

	if p.ID == "" {
		p.ID = syntheticID()
	}

	var used, total float64
	if src, ok := mapping[BudgetTarget]; ok {
		used, total = resolveBudgetAmounts(RawRecord(rec[src].Obj))
	} else {
		used, total = resolveBudgetAmounts(rec)
	}
	if used > 0 || total > 0 {
		p.Budget = &models.Budget{Used: used, Total: total}
	}

	return p, mapping
}

// syntheticID is a placeholder so downstream merge-by-id logic has a key.
// It is not a durable identity.
func syntheticID() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}

// clampProgress rounds to a whole percentage and clamps to [0,100].
func clampProgress(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	n := int(math.Round(f))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
