package models

// Canonical project statuses used across the dashboard.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusOnHold    = "onHold"
	StatusAtRisk    = "atRisk"
)

// Canonical risk levels.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ProjectStatuses and RiskLevels are the closed candidate sets the enum
// coercer resolves against.
var (
	ProjectStatuses = []string{StatusActive, StatusCompleted, StatusOnHold, StatusAtRisk}
	RiskLevels      = []string{RiskLow, RiskMedium, RiskHigh}
)

// Budget holds spent and planned amounts for a project. Both are >= 0.
type Budget struct {
	Used  float64 `json:"used" yaml:"used"`
	Total float64 `json:"total" yaml:"total"`
}

// BudgetMap maps a project identifier-or-name to its budget amounts.
type BudgetMap map[string]Budget

// Project is the canonical record a project document is extracted into, and
// the shape of roster entries the matcher runs against.
type Project struct {
	ID             string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string  `json:"name" yaml:"name"`
	Client         string  `json:"client,omitempty" yaml:"client,omitempty"`
	Status         string  `json:"status" yaml:"status,omitempty"`
	Progress       int     `json:"progress" yaml:"progress,omitempty"`
	Description    string  `json:"description,omitempty" yaml:"description,omitempty"`
	ProjectManager string  `json:"projectManager,omitempty" yaml:"projectManager,omitempty"`
	RiskLevel      string  `json:"riskLevel" yaml:"riskLevel,omitempty"`
	StartDate      string  `json:"startDate,omitempty" yaml:"startDate,omitempty"` // ISO YYYY-MM-DD
	EndDate        string  `json:"endDate,omitempty" yaml:"endDate,omitempty"`     // ISO YYYY-MM-DD
	HoursWorked    float64 `json:"hoursWorked,omitempty" yaml:"hoursWorked,omitempty"`
	EstimatedTime  float64 `json:"estimatedTime,omitempty" yaml:"estimatedTime,omitempty"`
	Margin         float64 `json:"margin,omitempty" yaml:"margin,omitempty"`
	Budget         *Budget `json:"budget,omitempty" yaml:"budget,omitempty"`
}
