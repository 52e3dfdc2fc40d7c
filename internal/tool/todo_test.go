package tool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceDouge/dadgpt/internal/storage"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

func execTodo(t *testing.T, tt *TodoTool, input TodoInput) *Result {
	t.Helper()
	data, err := json.Marshal(input)
	require.NoError(t, err)
	res, err := tt.Execute(context.Background(), data, &Context{})
	require.NoError(t, err)
	return res
}

func createTodo(t *testing.T, tt *TodoTool, input TodoInput) *types.Todo {
	t.Helper()
	input.Action = "create"
	res := execTodo(t, tt, input)
	var td types.Todo
	require.NoError(t, json.Unmarshal([]byte(res.Output), &td))
	return &td
}

func TestTodoToolCreateDefaults(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)

	td := createTodo(t, tt, TodoInput{Title: "Buy groceries"})
	assert.Equal(t, types.TodoPending, td.State)
	assert.Equal(t, types.PriorityMedium, td.Priority)

	var stored types.Todo
	require.NoError(t, store.Get(context.Background(), []string{"todo", td.ID}, &stored))
	assert.Equal(t, "Buy groceries", stored.Title)
}

func TestTodoToolBlockScenario(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)
	td := createTodo(t, tt, TodoInput{Title: "task"})

	execTodo(t, tt, TodoInput{Action: "start", ID: td.ID})
	res := execTodo(t, tt, TodoInput{Action: "block", ID: td.ID, BlockedBy: "other-id"})
	assert.Equal(t, "blocked", res.Metadata["state"])

	var stored types.Todo
	require.NoError(t, store.Get(context.Background(), []string{"todo", td.ID}, &stored))
	require.NotNil(t, stored.BlockedBy)
	assert.Equal(t, "other-id", *stored.BlockedBy)

	res = execTodo(t, tt, TodoInput{Action: "unblock", ID: td.ID})
	assert.Equal(t, "in_progress", res.Metadata["state"])
}

func TestTodoToolCompleteAndReopen(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)
	td := createTodo(t, tt, TodoInput{Title: "task"})

	execTodo(t, tt, TodoInput{Action: "complete", ID: td.ID})
	var stored types.Todo
	require.NoError(t, store.Get(context.Background(), []string{"todo", td.ID}, &stored))
	assert.Equal(t, types.TodoDone, stored.State)
	assert.NotNil(t, stored.CompletedAt)

	execTodo(t, tt, TodoInput{Action: "reopen", ID: td.ID})
	require.NoError(t, store.Get(context.Background(), []string{"todo", td.ID}, &stored))
	assert.Equal(t, types.TodoPending, stored.State)
	assert.Nil(t, stored.CompletedAt)
}

func TestTodoToolDefer(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)
	td := createTodo(t, tt, TodoInput{Title: "task"})

	res := execTodo(t, tt, TodoInput{Action: "defer", ID: td.ID, DueDate: "2026-10-01"})
	assert.Equal(t, "deferred", res.Metadata["state"])

	var stored types.Todo
	require.NoError(t, store.Get(context.Background(), []string{"todo", td.ID}, &stored))
	require.NotNil(t, stored.DueDate)
	assert.Equal(t, "2026-10-01", stored.DueDate.Format("2006-01-02"))
}

func TestTodoToolIgnoredEventReportsNoChange(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)
	td := createTodo(t, tt, TodoInput{Title: "task"})

	// unblock is not legal from pending.
	res := execTodo(t, tt, TodoInput{Action: "unblock", ID: td.ID})
	assert.Equal(t, false, res.Metadata["changed"])
	assert.Equal(t, "pending", res.Metadata["state"])
}

func TestTodoToolErrors(t *testing.T) {
	store := storage.New(t.TempDir())
	tt := NewTodoTool(store)
	ctx := context.Background()

	_, err := tt.Execute(ctx, json.RawMessage(`{"action":"block","id":"x"}`), &Context{})
	assert.Error(t, err, "block without blockedBy")

	_, err = tt.Execute(ctx, json.RawMessage(`{"action":"defer","id":"x"}`), &Context{})
	assert.Error(t, err, "defer without date")
}
