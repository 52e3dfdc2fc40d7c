// Package todo implements the todo lifecycle: a factory for todo records
// and the state machine that governs how they evolve.
package todo

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Option customizes a todo at creation time.
type Option func(*types.Todo)

// WithID overrides the generated id.
func WithID(id string) Option {
	return func(t *types.Todo) { t.ID = id }
}

// WithDescription sets the todo description.
func WithDescription(description string) Option {
	return func(t *types.Todo) { t.Description = description }
}

// WithPriority sets the priority. Unknown values are ignored and the
// default (medium) kept.
func WithPriority(p types.Priority) Option {
	return func(t *types.Todo) {
		if p.Valid() {
			t.Priority = p
		}
	}
}

// WithDueDate sets the due date.
func WithDueDate(due time.Time) Option {
	return func(t *types.Todo) { t.DueDate = &due }
}

// WithTags sets the tag list.
func WithTags(tags ...string) Option {
	return func(t *types.Todo) { t.Tags = tags }
}

// WithGoal links the todo to a goal by id. The link is informational; no
// referential check happens here.
func WithGoal(goalID string) Option {
	return func(t *types.Todo) { t.GoalID = goalID }
}

// New creates a todo with defaults applied and caller options layered on
// top. A fresh todo is pending with medium priority and an empty tag list;
// no field is left partially missing.
func New(title string, opts ...Option) *types.Todo {
	now := time.Now().UTC()
	t := &types.Todo{
		ID:        ulid.Make().String(),
		State:     types.TodoPending,
		Title:     title,
		Priority:  types.PriorityMedium,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
