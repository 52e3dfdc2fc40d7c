// Package goal implements the goal lifecycle: a factory for goal records
// and the state machine that governs how they evolve.
package goal

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Option customizes a goal at creation time.
type Option func(*types.Goal)

// WithID overrides the generated id.
func WithID(id string) Option {
	return func(g *types.Goal) { g.ID = id }
}

// WithCategory sets the goal category.
func WithCategory(category string) Option {
	return func(g *types.Goal) { g.Category = category }
}

// WithDescription sets the goal description.
func WithDescription(description string) Option {
	return func(g *types.Goal) { g.Description = description }
}

// WithDueDate sets the target date.
func WithDueDate(due time.Time) Option {
	return func(g *types.Goal) { g.DueDate = &due }
}

// WithMilestones sets the initial milestone list.
func WithMilestones(milestones ...types.Milestone) Option {
	return func(g *types.Goal) { g.Milestones = milestones }
}

// New creates a goal with defaults applied and caller options layered on
// top. Every field is populated: a freshly created goal is not_started with
// zero progress and an empty milestone list.
func New(title string, opts ...Option) *types.Goal {
	now := time.Now().UTC()
	g := &types.Goal{
		ID:         ulid.Make().String(),
		State:      types.GoalNotStarted,
		Title:      title,
		Category:   "personal",
		Progress:   0,
		Milestones: []types.Milestone{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewMilestone creates a milestone with a generated id.
func NewMilestone(title string) types.Milestone {
	return types.Milestone{
		ID:    ulid.Make().String(),
		Title: title,
	}
}
