package todo

import (
	"time"

	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Event is a todo lifecycle event. The set is closed to this package.
type Event interface {
	kind() eventKind
}

type eventKind int

const (
	evStart eventKind = iota
	evComplete
	evBlock
	evUnblock
	evDefer
	evCancel
	evReopen
)

// Start begins work on a pending or deferred todo.
type Start struct{}

// Complete finishes a pending or in_progress todo, stamping CompletedAt.
type Complete struct{}

// Block marks an in_progress todo as blocked by another todo.
// BlockedBy is required; a Block with an empty id is ignored.
type Block struct {
	BlockedBy string
}

// Unblock returns a blocked todo to in_progress and clears BlockedBy.
type Unblock struct{}

// Defer pushes a pending or in_progress todo to a later date, stored in the
// due-date field. Until is required; a Defer with a zero time is ignored.
type Defer struct {
	Until time.Time
}

// Cancel drops a todo. Legal from every state except done and cancelled.
type Cancel struct{}

// Reopen returns a done or cancelled todo to pending and clears
// CompletedAt. This event is why no todo state is terminal.
type Reopen struct{}

func (Start) kind() eventKind    { return evStart }
func (Complete) kind() eventKind { return evComplete }
func (Block) kind() eventKind    { return evBlock }
func (Unblock) kind() eventKind  { return evUnblock }
func (Defer) kind() eventKind    { return evDefer }
func (Cancel) kind() eventKind   { return evCancel }
func (Reopen) kind() eventKind   { return evReopen }

// transition is one cell of the table. mutate receives the event timestamp
// so completion and deferral can stamp fields; returning false marks the
// event ignored.
type transition struct {
	next   types.TodoState // "" = stay in current state
	mutate func(t *types.Todo, ev Event, now time.Time) bool
}

// transitions is the todo state machine. A missing cell is a defined no-op.
var transitions = map[types.TodoState]map[eventKind]transition{
	types.TodoPending: {
		evStart:    {next: types.TodoInProgress},
		evComplete: {next: types.TodoDone, mutate: stampCompleted},
		evDefer:    {next: types.TodoDeferred, mutate: applyDefer},
		evCancel:   {next: types.TodoCancelled},
	},
	types.TodoInProgress: {
		evComplete: {next: types.TodoDone, mutate: stampCompleted},
		evBlock: {next: types.TodoBlocked, mutate: func(t *types.Todo, ev Event, _ time.Time) bool {
			blocker := ev.(Block).BlockedBy
			if blocker == "" {
				return false
			}
			t.BlockedBy = &blocker
			return true
		}},
		evDefer:  {next: types.TodoDeferred, mutate: applyDefer},
		evCancel: {next: types.TodoCancelled},
	},
	types.TodoBlocked: {
		evUnblock: {next: types.TodoInProgress, mutate: func(t *types.Todo, _ Event, _ time.Time) bool {
			t.BlockedBy = nil
			return true
		}},
		evCancel: {next: types.TodoCancelled},
	},
	types.TodoDeferred: {
		evStart:  {next: types.TodoInProgress},
		evCancel: {next: types.TodoCancelled},
	},
	types.TodoDone: {
		evReopen: {next: types.TodoPending, mutate: clearCompleted},
	},
	types.TodoCancelled: {
		evReopen: {next: types.TodoPending, mutate: clearCompleted},
	},
}

func stampCompleted(t *types.Todo, _ Event, now time.Time) bool {
	t.CompletedAt = &now
	return true
}

func clearCompleted(t *types.Todo, _ Event, _ time.Time) bool {
	t.CompletedAt = nil
	return true
}

func applyDefer(t *types.Todo, ev Event, _ time.Time) bool {
	until := ev.(Defer).Until
	if until.IsZero() {
		return false
	}
	t.DueDate = &until
	return true
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) { m.now = now }
}

// Machine drives one todo's lifecycle. It is the sole mutator of the todo
// it wraps; persistence is the caller's concern.
type Machine struct {
	todo *types.Todo
	now  func() time.Time
}

// NewMachine creates a machine bound to t.
func NewMachine(t *types.Todo, opts ...MachineOption) *Machine {
	m := &Machine{
		todo: t,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Todo returns the todo the machine operates on.
func (m *Machine) Todo() *types.Todo {
	return m.todo
}

// Apply processes one event to completion, returning true if the todo
// changed. Ignored events leave every field untouched, UpdatedAt included.
func (m *Machine) Apply(ev Event) bool {
	row, ok := transitions[m.todo.State]
	if !ok {
		return false
	}
	tr, ok := row[ev.kind()]
	if !ok {
		return false
	}

	now := m.now()
	if tr.mutate != nil && !tr.mutate(m.todo, ev, now) {
		return false
	}
	if tr.next != "" {
		m.todo.State = tr.next
	}
	m.todo.UpdatedAt = now
	return true
}
