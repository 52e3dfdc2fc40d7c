package types

import "time"

// TodoState is the lifecycle state of a todo. Unlike goals, no todo state is
// terminal: done and cancelled both accept REOPEN.
type TodoState string

const (
	TodoPending    TodoState = "pending"
	TodoInProgress TodoState = "in_progress"
	TodoBlocked    TodoState = "blocked"
	TodoDeferred   TodoState = "deferred"
	TodoDone       TodoState = "done"
	TodoCancelled  TodoState = "cancelled"
)

// Priority of a todo.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Todo is the persisted todo document: the lifecycle context fields plus the
// current state. Stored as one JSON file per id.
type Todo struct {
	ID          string     `json:"id"`
	State       TodoState  `json:"state"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags"`
	GoalID      string     `json:"goalId,omitempty"`    // informational link, not enforced
	BlockedBy   *string    `json:"blockedBy,omitempty"` // id of the blocking todo
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
