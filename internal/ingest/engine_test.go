package ingest

import (
	"testing"

	"github.com/Callmewookie65/planboard/internal/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testSchema(t))
}

func TestEngineProcessProjectDocument(t *testing.T) {
	e := testEngine(t)

	records := []RawRecord{{
		"Project Name": StringValue("Website Redesign"),
		"Client":       StringValue("Acme Corp"),
		"Status":       StringValue("Active"),
		"Progress":     StringValue("75"),
	}}

	res := e.Process("projects_2026.csv", records)
	if res.DocumentType != DocTypeProject {
		t.Fatalf("documentType = %q", res.DocumentType)
	}
	if res.ProjectData == nil {
		t.Fatal("projectData missing")
	}
	if res.ProjectData.Name != "Website Redesign" || res.ProjectData.Progress != 75 {
		t.Errorf("projectData = %+v", res.ProjectData)
	}
	if res.TaskData != nil || res.BudgetData != nil {
		t.Error("non-project payloads must stay empty")
	}

	// File-name signal 1.0, four of thirteen fields mapped.
	if res.Confidence <= 0.6 || res.Confidence >= 0.7 {
		t.Errorf("confidence = %v, want in (0.6, 0.7)", res.Confidence)
	}
}

func TestEngineProcessTaskDocumentByContent(t *testing.T) {
	e := testEngine(t)

	records := []RawRecord{{
		"Title":    StringValue("Fix login"),
		"Assignee": StringValue("Jan Kowalski"),
		"Due Date": StringValue("2026-03-15"),
		"Status":   StringValue("Done"),
		"Priority": StringValue("low"),
	}}

	res := e.Process("export.csv", records)
	if res.DocumentType != DocTypeTask {
		t.Fatalf("documentType = %q", res.DocumentType)
	}
	if len(res.TaskData) != 1 {
		t.Fatalf("taskData = %+v", res.TaskData)
	}
	if res.TaskData[0].Status != models.TaskDone || res.TaskData[0].Priority != models.PriorityLow {
		t.Errorf("task = %+v", res.TaskData[0])
	}

	// Content signal 0.7, five of eight fields mapped.
	if res.Confidence <= 0.6 || res.Confidence >= 0.7 {
		t.Errorf("confidence = %v, want in (0.6, 0.7)", res.Confidence)
	}
}

func TestEngineProcessBudgetDocument(t *testing.T) {
	e := testEngine(t)

	records := []RawRecord{
		{
			"projectName": StringValue("Alpha"),
			"totalBudget": NumberValue(10000),
			"usedBudget":  NumberValue(2500),
		},
		{
			"note": StringValue("totals exclude VAT"),
		},
	}

	res := e.Process("finance-report.csv", records)
	if res.DocumentType != DocTypeBudget {
		t.Fatalf("documentType = %q", res.DocumentType)
	}
	if got := res.BudgetData["Alpha"]; got != (models.Budget{Used: 2500, Total: 10000}) {
		t.Errorf("budgetData = %+v", res.BudgetData)
	}
	if len(res.PossibleProjects) != 1 || res.PossibleProjects[0] != "Alpha" {
		t.Errorf("possibleProjects = %v", res.PossibleProjects)
	}

	// File-name signal 1.0, one retained entry out of two rows.
	if res.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75", res.Confidence)
	}
}

func TestEngineProcessUnknownDocument(t *testing.T) {
	e := testEngine(t)

	records := []RawRecord{{"foo": StringValue("bar")}}
	res := e.Process("data.csv", records)

	if res.DocumentType != DocTypeUnknown {
		t.Fatalf("documentType = %q", res.DocumentType)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %v", res.Confidence)
	}
	if res.ProjectData != nil || res.TaskData != nil || res.BudgetData != nil {
		t.Error("unknown documents carry no payload")
	}
}

func TestEngineProcessEmptyRecords(t *testing.T) {
	e := testEngine(t)

	res := e.Process("projects.csv", nil)
	if res.DocumentType != DocTypeProject {
		t.Fatalf("documentType = %q", res.DocumentType)
	}
	if res.Confidence != 0 || res.ProjectData != nil {
		t.Errorf("empty document must yield zero confidence and no payload, got %+v", res)
	}
}

func TestEngineMatch(t *testing.T) {
	e := testEngine(t)
	roster := []models.Project{
		{ID: "101", Name: "Website Redesign"},
		{ID: "102", Name: "Mobile App"},
	}

	res := e.Process("projects.csv", []RawRecord{{
		"Project Name": StringValue("Website Redesign"),
	}})
	matches := e.Match(res, roster)
	if len(matches) != 1 || matches[0].ProjectID != "101" || matches[0].Similarity != 1.0 {
		t.Errorf("matches = %+v", matches)
	}

	budget := e.Process("budget.csv", []RawRecord{{
		"projectId":   StringValue("102"),
		"totalBudget": NumberValue(500),
	}})
	matches = e.Match(budget, roster)
	if len(matches) != 1 || matches[0].ProjectID != "102" || matches[0].Similarity != 1.0 {
		t.Errorf("budget matches = %+v", matches)
	}

	if got := e.Match(ProcessingResult{DocumentType: DocTypeUnknown}, roster); got != nil {
		t.Errorf("unknown match = %+v", got)
	}
}
