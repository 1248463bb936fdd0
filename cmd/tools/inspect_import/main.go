// inspect_import runs the classification engine over a local file and prints
// what the dashboard would receive: document type, confidence, extracted
// records and roster match candidates.
//
// Usage: inspect_import [-roster roster.yaml] <file>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Callmewookie65/planboard/internal/ingest"
	"github.com/Callmewookie65/planboard/internal/models"
	"github.com/Callmewookie65/planboard/internal/reader"
	"github.com/Callmewookie65/planboard/internal/roster"
)

func main() {
	rosterPath := flag.String("roster", "", "YAML roster seed to match against")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: inspect_import [-roster roster.yaml] <file>")
	}
	path := flag.Arg(0)

	schema, err := ingest.LoadSchema("")
	if err != nil {
		log.Fatal(err)
	}
	engine := ingest.NewEngine(schema)

	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	records, err := reader.Parse(path, f)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}

	// Classify on the base name: directory components like "projects/" must
	// not feed the file-name hints.
	result := engine.Process(filepath.Base(path), records)
	fmt.Printf("Document type: %s (confidence %.2f, %d records)\n\n", result.DocumentType, result.Confidence, len(records))

	switch result.DocumentType {
	case ingest.DocTypeProject:
		renderProject(result.ProjectData)
	case ingest.DocTypeTask:
		renderTasks(result.TaskData)
	case ingest.DocTypeBudget:
		renderBudgets(result.BudgetData)
	default:
		fmt.Println("No structural evidence found; nothing extracted.")
		return
	}

	var projects []models.Project
	if *rosterPath != "" {
		projects, err = roster.LoadSeed(*rosterPath)
		if err != nil {
			log.Fatalf("Roster load failed: %v", err)
		}
	}
	if len(projects) == 0 {
		return
	}

	matches := engine.Match(result, projects)
	fmt.Printf("\nRoster matches (%d candidates):\n", len(matches))
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Project ID", "Name", "Similarity"})
	for _, m := range matches {
		t.AppendRow(table.Row{m.ProjectID, m.Name, fmt.Sprintf("%.2f", m.Similarity)})
	}
	t.Render()
}

func renderProject(p *models.Project) {
	if p == nil {
		fmt.Println("No project extracted.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"ID", p.ID})
	t.AppendRow(table.Row{"Name", p.Name})
	t.AppendRow(table.Row{"Client", p.Client})
	t.AppendRow(table.Row{"Status", p.Status})
	t.AppendRow(table.Row{"Progress", fmt.Sprintf("%d%%", p.Progress)})
	t.AppendRow(table.Row{"Manager", p.ProjectManager})
	t.AppendRow(table.Row{"Risk", p.RiskLevel})
	t.AppendRow(table.Row{"Start", p.StartDate})
	t.AppendRow(table.Row{"End", p.EndDate})
	if p.Budget != nil {
		t.AppendRow(table.Row{"Budget", fmt.Sprintf("%.2f / %.2f", p.Budget.Used, p.Budget.Total)})
	}
	t.Render()
}

func renderTasks(tasks []models.Task) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Status", "Priority", "Project", "Due", "Assignee"})
	for _, task := range tasks {
		assignee := ""
		if task.Assignee != nil {
			assignee = task.Assignee.Name
		}
		t.AppendRow(table.Row{task.ID, task.Title, task.Status, task.Priority, task.Project, task.DueDate, assignee})
	}
	t.Render()
}

func renderBudgets(budgets models.BudgetMap) {
	idents := make([]string, 0, len(budgets))
	for ident := range budgets {
		idents = append(idents, ident)
	}
	sort.Slice(idents, func(i, j int) bool {
		return strings.ToLower(idents[i]) < strings.ToLower(idents[j])
	})

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Project", "Used", "Total"})
	for _, ident := range idents {
		b := budgets[ident]
		t.AppendRow(table.Row{ident, fmt.Sprintf("%.2f", b.Used), fmt.Sprintf("%.2f", b.Total)})
	}
	t.Render()
}
