package goal

import (
	"time"

	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Event is a goal lifecycle event. The set is closed: only the event types
// in this package satisfy it, so the transition table below covers every
// possible input.
type Event interface {
	kind() eventKind
}

type eventKind int

const (
	evStart eventKind = iota
	evPause
	evResume
	evComplete
	evAbandon
	evUpdateProgress
	evCompleteMilestone
)

// Start begins work on a not_started goal.
type Start struct{}

// Pause suspends an in_progress goal.
type Pause struct{}

// Resume continues a paused goal.
type Resume struct{}

// Complete finishes an in_progress goal, forcing progress to 100.
type Complete struct{}

// Abandon gives up on a goal. Legal from every non-terminal state.
type Abandon struct{}

// UpdateProgress sets the progress percentage. The value is clamped to
// 0..100 before storing.
type UpdateProgress struct {
	Progress int
}

// CompleteMilestone marks one milestone done by id.
type CompleteMilestone struct {
	MilestoneID string
}

func (Start) kind() eventKind             { return evStart }
func (Pause) kind() eventKind             { return evPause }
func (Resume) kind() eventKind            { return evResume }
func (Complete) kind() eventKind          { return evComplete }
func (Abandon) kind() eventKind           { return evAbandon }
func (UpdateProgress) kind() eventKind    { return evUpdateProgress }
func (CompleteMilestone) kind() eventKind { return evCompleteMilestone }

// transition is one cell of the table: an optional state change plus an
// optional context mutation. A mutate func returning false means nothing
// changed and the event counts as ignored.
type transition struct {
	next   types.GoalState // "" = stay in current state
	mutate func(g *types.Goal, ev Event) bool
}

// transitions is the goal state machine. A missing cell is a defined no-op:
// the event is ignored and the context left untouched. completed and
// abandoned have no rows at all, which is what makes them terminal.
var transitions = map[types.GoalState]map[eventKind]transition{
	types.GoalNotStarted: {
		evStart:   {next: types.GoalInProgress},
		evAbandon: {next: types.GoalAbandoned},
	},
	types.GoalInProgress: {
		evPause:    {next: types.GoalPaused},
		evComplete: {next: types.GoalCompleted, mutate: forceProgressComplete},
		evAbandon:  {next: types.GoalAbandoned},
		evUpdateProgress: {mutate: func(g *types.Goal, ev Event) bool {
			g.Progress = clampProgress(ev.(UpdateProgress).Progress)
			return true
		}},
		evCompleteMilestone: {mutate: func(g *types.Goal, ev Event) bool {
			id := ev.(CompleteMilestone).MilestoneID
			for i := range g.Milestones {
				if g.Milestones[i].ID == id {
					g.Milestones[i].Completed = true
					return true
				}
			}
			return false
		}},
	},
	types.GoalPaused: {
		evResume:  {next: types.GoalInProgress},
		evAbandon: {next: types.GoalAbandoned},
	},
}

func forceProgressComplete(g *types.Goal, _ Event) bool {
	g.Progress = 100
	return true
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock overrides the clock used for UpdatedAt stamps.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) { m.now = now }
}

// Machine drives one goal's lifecycle. It is the sole mutator of the goal
// it wraps; persistence is the caller's concern. Machines are not shared
// across concurrent operations on the same goal id.
type Machine struct {
	goal *types.Goal
	now  func() time.Time
}

// NewMachine creates a machine bound to g.
func NewMachine(g *types.Goal, opts ...MachineOption) *Machine {
	m := &Machine{
		goal: g,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Goal returns the goal the machine operates on.
func (m *Machine) Goal() *types.Goal {
	return m.goal
}

// Apply processes one event to completion. It returns true if the event
// changed the goal (state or context), in which case UpdatedAt is stamped.
// Ignored events return false and leave every field, UpdatedAt included,
// exactly as it was; callers distinguish no-op from error by that result.
func (m *Machine) Apply(ev Event) bool {
	row, ok := transitions[m.goal.State]
	if !ok {
		return false
	}
	tr, ok := row[ev.kind()]
	if !ok {
		return false
	}

	if tr.mutate != nil && !tr.mutate(m.goal, ev) {
		return false
	}
	if tr.next != "" {
		m.goal.State = tr.next
	}
	m.goal.UpdatedAt = m.now()
	return true
}
