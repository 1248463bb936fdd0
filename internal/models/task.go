package models

// Canonical task statuses.
const (
	TaskTodo       = "todo"
	TaskInProgress = "inProgress"
	TaskDone       = "done"
)

// Canonical task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	TaskStatuses   = []string{TaskTodo, TaskInProgress, TaskDone}
	TaskPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh}
)

// Assignee identifies who a task is assigned to. AvatarInitials is what the
// dashboard renders when no avatar image exists.
type Assignee struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	AvatarInitials string `json:"avatarInitials"`
}

// Task is the canonical record a task document row is extracted into.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Project     string    `json:"project,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"` // ISO YYYY-MM-DD
	Assignee    *Assignee `json:"assignee,omitempty"`
}
