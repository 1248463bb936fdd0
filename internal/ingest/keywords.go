package ingest

// Signal keyword lists shared by the classifier and the extractors so both
// agree on what counts as budget-, task- or project-like. The classifier
// checks the lists in this order, which encodes the priority budget > task >
// project for documents carrying signals for more than one type.
var (
	budgetKeywords  = []string{"budget", "cost", "spend", "spent", "expense", "finance"}
	taskKeywords    = []string{"task", "assignee", "priority", "due", "sprint", "story"}
	projectKeywords = []string{"project", "client", "manager", "progress", "milestone"}
)

// Budget amount key families. Lookup visits candidates in declared order and
// stops at the first key that matches; exact (folded) equality is tried
// before containment.
var (
	usedBudgetKeys      = []string{"usedBudget", "budgetUsed", "spentBudget", "actualCost", "used", "spent"}
	totalBudgetKeys     = []string{"totalBudget", "budgetTotal", "plannedBudget", "estimatedCost", "total", "budget"}
	remainingBudgetKeys = []string{"remainingBudget", "budgetRemaining", "remaining", "left"}
	percentUsedKeys     = []string{"usedPercent", "percentUsed", "budgetUsedPercent", "percentage"}
)

// Identifier key families for budget rows. The id family is tried before the
// name family, and the search stops at the first family that yields a
// non-empty value.
var (
	projectIDKeys   = []string{"projectId", "id", "project_id"}
	projectNameKeys = []string{"projectName", "project", "name", "project_name"}
)

// referenceKeys are the columns task documents name their parent project
// under. Values found here feed the possible-projects reference set.
var referenceKeys = []string{"project", "projectName", "projectId", "project_name", "projectKey"}
