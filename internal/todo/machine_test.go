package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceDouge/dadgpt/pkg/types"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewAppliesDefaults(t *testing.T) {
	td := New("Buy groceries")

	assert.NotEmpty(t, td.ID)
	assert.Equal(t, types.TodoPending, td.State)
	assert.Equal(t, types.PriorityMedium, td.Priority)
	assert.NotNil(t, td.Tags)
	assert.Nil(t, td.BlockedBy)
	assert.Nil(t, td.CompletedAt)
	assert.Equal(t, td.CreatedAt, td.UpdatedAt)
}

func TestNewAppliesOptions(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	td := New("Buy groceries",
		WithDescription("milk, eggs"),
		WithPriority(types.PriorityHigh),
		WithDueDate(due),
		WithTags("errands", "home"),
		WithGoal("goal-1"),
	)

	assert.Equal(t, "milk, eggs", td.Description)
	assert.Equal(t, types.PriorityHigh, td.Priority)
	require.NotNil(t, td.DueDate)
	assert.Equal(t, due, *td.DueDate)
	assert.Equal(t, []string{"errands", "home"}, td.Tags)
	assert.Equal(t, "goal-1", td.GoalID)
}

func TestNewIgnoresInvalidPriority(t *testing.T) {
	td := New("task", WithPriority("urgent"))
	assert.Equal(t, types.PriorityMedium, td.Priority)
}

func TestTransitions(t *testing.T) {
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		from      types.TodoState
		event     Event
		wantState types.TodoState
		wantApply bool
	}{
		{"start from pending", types.TodoPending, Start{}, types.TodoInProgress, true},
		{"complete from pending", types.TodoPending, Complete{}, types.TodoDone, true},
		{"defer from pending", types.TodoPending, Defer{Until: date}, types.TodoDeferred, true},
		{"cancel from pending", types.TodoPending, Cancel{}, types.TodoCancelled, true},
		{"complete from in_progress", types.TodoInProgress, Complete{}, types.TodoDone, true},
		{"block from in_progress", types.TodoInProgress, Block{BlockedBy: "other"}, types.TodoBlocked, true},
		{"defer from in_progress", types.TodoInProgress, Defer{Until: date}, types.TodoDeferred, true},
		{"cancel from in_progress", types.TodoInProgress, Cancel{}, types.TodoCancelled, true},
		{"unblock from blocked", types.TodoBlocked, Unblock{}, types.TodoInProgress, true},
		{"cancel from blocked", types.TodoBlocked, Cancel{}, types.TodoCancelled, true},
		{"start from deferred", types.TodoDeferred, Start{}, types.TodoInProgress, true},
		{"cancel from deferred", types.TodoDeferred, Cancel{}, types.TodoCancelled, true},
		{"reopen from done", types.TodoDone, Reopen{}, types.TodoPending, true},
		{"reopen from cancelled", types.TodoCancelled, Reopen{}, types.TodoPending, true},

		{"block from pending ignored", types.TodoPending, Block{BlockedBy: "other"}, types.TodoPending, false},
		{"unblock from pending ignored", types.TodoPending, Unblock{}, types.TodoPending, false},
		{"reopen from pending ignored", types.TodoPending, Reopen{}, types.TodoPending, false},
		{"start from in_progress ignored", types.TodoInProgress, Start{}, types.TodoInProgress, false},
		{"start from blocked ignored", types.TodoBlocked, Start{}, types.TodoBlocked, false},
		{"complete from blocked ignored", types.TodoBlocked, Complete{}, types.TodoBlocked, false},
		{"defer from blocked ignored", types.TodoBlocked, Defer{Until: date}, types.TodoBlocked, false},
		{"complete from deferred ignored", types.TodoDeferred, Complete{}, types.TodoDeferred, false},
		{"defer from deferred ignored", types.TodoDeferred, Defer{Until: date}, types.TodoDeferred, false},
		{"start from done ignored", types.TodoDone, Start{}, types.TodoDone, false},
		{"complete from done ignored", types.TodoDone, Complete{}, types.TodoDone, false},
		{"cancel from done ignored", types.TodoDone, Cancel{}, types.TodoDone, false},
		{"start from cancelled ignored", types.TodoCancelled, Start{}, types.TodoCancelled, false},
		{"cancel from cancelled ignored", types.TodoCancelled, Cancel{}, types.TodoCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := New("task")
			td.State = tt.from
			before := td.UpdatedAt

			now := before.Add(time.Hour)
			m := NewMachine(td, WithClock(fixedClock(now)))

			changed := m.Apply(tt.event)
			assert.Equal(t, tt.wantApply, changed)
			assert.Equal(t, tt.wantState, td.State)
			if changed {
				assert.Equal(t, now, td.UpdatedAt)
			} else {
				assert.Equal(t, before, td.UpdatedAt, "ignored event must not touch UpdatedAt")
			}
		})
	}
}

func TestBlockUnblockScenario(t *testing.T) {
	td := New("task")
	m := NewMachine(td)

	require.True(t, m.Apply(Start{}))
	assert.Equal(t, types.TodoInProgress, td.State)

	require.True(t, m.Apply(Block{BlockedBy: "other-id"}))
	assert.Equal(t, types.TodoBlocked, td.State)
	require.NotNil(t, td.BlockedBy)
	assert.Equal(t, "other-id", *td.BlockedBy)

	require.True(t, m.Apply(Unblock{}))
	assert.Equal(t, types.TodoInProgress, td.State)
	assert.Nil(t, td.BlockedBy)
}

func TestBlockRequiresBlockerID(t *testing.T) {
	td := New("task")
	m := NewMachine(td)
	require.True(t, m.Apply(Start{}))
	before := td.UpdatedAt

	assert.False(t, m.Apply(Block{}))
	assert.Equal(t, types.TodoInProgress, td.State)
	assert.Equal(t, before, td.UpdatedAt)
}

func TestDeferStoresDate(t *testing.T) {
	until := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	td := New("task")
	m := NewMachine(td)

	require.True(t, m.Apply(Defer{Until: until}))
	assert.Equal(t, types.TodoDeferred, td.State)
	require.NotNil(t, td.DueDate)
	assert.Equal(t, until, *td.DueDate)
}

func TestDeferRequiresDate(t *testing.T) {
	td := New("task")
	m := NewMachine(td)

	assert.False(t, m.Apply(Defer{}))
	assert.Equal(t, types.TodoPending, td.State)
}

func TestCompleteStampsAndReopenClears(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	td := New("task")
	m := NewMachine(td, WithClock(fixedClock(now)))

	require.True(t, m.Apply(Complete{}))
	assert.Equal(t, types.TodoDone, td.State)
	require.NotNil(t, td.CompletedAt)
	assert.Equal(t, now, *td.CompletedAt)

	require.True(t, m.Apply(Reopen{}))
	assert.Equal(t, types.TodoPending, td.State)
	assert.Nil(t, td.CompletedAt)
}

func TestNoStateIsTerminal(t *testing.T) {
	// Every state accepts at least one event.
	probes := []Event{Start{}, Complete{}, Block{BlockedBy: "x"}, Unblock{}, Defer{Until: time.Now()}, Cancel{}, Reopen{}}
	states := []types.TodoState{
		types.TodoPending, types.TodoInProgress, types.TodoBlocked,
		types.TodoDeferred, types.TodoDone, types.TodoCancelled,
	}

	for _, state := range states {
		moved := false
		for _, ev := range probes {
			td := New("task")
			td.State = state
			if NewMachine(td).Apply(ev) {
				moved = true
				break
			}
		}
		assert.True(t, moved, "state %s should accept some event", state)
	}
}
