package types

import "time"

// GoalState is the lifecycle state of a goal.
type GoalState string

const (
	GoalNotStarted GoalState = "not_started"
	GoalInProgress GoalState = "in_progress"
	GoalPaused     GoalState = "paused"
	GoalCompleted  GoalState = "completed"
	GoalAbandoned  GoalState = "abandoned"
)

// Terminal reports whether no further event can change the goal.
func (s GoalState) Terminal() bool {
	return s == GoalCompleted || s == GoalAbandoned
}

// Milestone is a checkpoint within a goal.
type Milestone struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Goal is the persisted goal document: the lifecycle context fields plus the
// current state. Stored as one JSON file per id.
type Goal struct {
	ID          string      `json:"id"`
	State       GoalState   `json:"state"`
	Title       string      `json:"title"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	Progress    int         `json:"progress"` // 0..100
	Milestones  []Milestone `json:"milestones"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
