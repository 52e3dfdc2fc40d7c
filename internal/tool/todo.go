package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/PatriceDouge/dadgpt/internal/event"
	"github.com/PatriceDouge/dadgpt/internal/storage"
	"github.com/PatriceDouge/dadgpt/internal/todo"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

const todoDescription = `Manage the user's todos. Actions:
- create: create a todo (title required; description, priority, dueDate, tags, goalId optional)
- get: fetch a todo by id
- list: list all todos
- start: begin work (from pending or deferred)
- complete: finish (from pending or in_progress)
- block: mark blocked by another todo (blockedBy required, from in_progress)
- unblock: clear the blocker (from blocked)
- defer: push to a later date (dueDate required, from pending or in_progress)
- cancel: drop the todo
- reopen: return a done or cancelled todo to pending

Lifecycle events that are not legal in the todo's current state are ignored;
the result reports whether the todo changed.`

// TodoTool manages todo records through the todo factory and state machine.
type TodoTool struct {
	store *storage.Storage
}

// TodoInput is the input for the todo tool.
type TodoInput struct {
	Action      string   `json:"action"`
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority,omitempty"` // low | medium | high
	DueDate     string   `json:"dueDate,omitempty"`  // YYYY-MM-DD or RFC 3339
	Tags        []string `json:"tags,omitempty"`
	GoalID      string   `json:"goalId,omitempty"`
	BlockedBy   string   `json:"blockedBy,omitempty"`
}

// NewTodoTool creates a todo tool backed by store.
func NewTodoTool(store *storage.Storage) *TodoTool {
	return &TodoTool{store: store}
}

func (t *TodoTool) ID() string          { return "todo" }
func (t *TodoTool) Description() string { return todoDescription }

func (t *TodoTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"action": {
				"type": "string",
				"enum": ["create", "get", "list", "start", "complete", "block", "unblock", "defer", "cancel", "reopen"],
				"description": "Operation to perform"
			},
			"id": {"type": "string", "description": "Todo id (required for everything except create and list)"},
			"title": {"type": "string", "description": "Todo title (create)"},
			"description": {"type": "string", "description": "Todo description (create)"},
			"priority": {"type": "string", "enum": ["low", "medium", "high"], "description": "Priority (create), default medium"},
			"dueDate": {"type": "string", "description": "Due date, YYYY-MM-DD (create, defer)"},
			"tags": {"type": "array", "items": {"type": "string"}, "description": "Tags (create)"},
			"goalId": {"type": "string", "description": "Linked goal id (create)"},
			"blockedBy": {"type": "string", "description": "Id of the blocking todo (block)"}
		},
		"required": ["action"]
	}`)
}

func (t *TodoTool) Execute(ctx context.Context, input json.RawMessage, toolCtx *Context) (*Result, error) {
	var params TodoInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	switch params.Action {
	case "create":
		return t.create(ctx, params)
	case "get":
		td, err := t.load(ctx, params.ID)
		if err != nil {
			return nil, err
		}
		return jsonResult(td.Title, td)
	case "list":
		return t.list(ctx)
	case "start":
		return t.apply(ctx, params.ID, todo.Start{})
	case "complete":
		return t.apply(ctx, params.ID, todo.Complete{})
	case "block":
		if params.BlockedBy == "" {
			return nil, errors.New("block action requires blockedBy")
		}
		return t.apply(ctx, params.ID, todo.Block{BlockedBy: params.BlockedBy})
	case "unblock":
		return t.apply(ctx, params.ID, todo.Unblock{})
	case "defer":
		if params.DueDate == "" {
			return nil, errors.New("defer action requires dueDate")
		}
		until, err := parseDate(params.DueDate)
		if err != nil {
			return nil, err
		}
		return t.apply(ctx, params.ID, todo.Defer{Until: until})
	case "cancel":
		return t.apply(ctx, params.ID, todo.Cancel{})
	case "reopen":
		return t.apply(ctx, params.ID, todo.Reopen{})
	default:
		return nil, fmt.Errorf("unknown action %q", params.Action)
	}
}

func (t *TodoTool) create(ctx context.Context, params TodoInput) (*Result, error) {
	if params.Title == "" {
		return nil, errors.New("create requires a title")
	}

	opts := []todo.Option{}
	if params.Description != "" {
		opts = append(opts, todo.WithDescription(params.Description))
	}
	if params.Priority != "" {
		opts = append(opts, todo.WithPriority(types.Priority(params.Priority)))
	}
	if params.DueDate != "" {
		due, err := parseDate(params.DueDate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, todo.WithDueDate(due))
	}
	if len(params.Tags) > 0 {
		opts = append(opts, todo.WithTags(params.Tags...))
	}
	if params.GoalID != "" {
		opts = append(opts, todo.WithGoal(params.GoalID))
	}

	td := todo.New(params.Title, opts...)
	if err := t.store.Put(ctx, todoPath(td.ID), td); err != nil {
		return nil, fmt.Errorf("failed to save todo: %w", err)
	}
	event.Publish(event.Event{Type: event.TodoCreated, Data: td})
	return jsonResult("Created todo: "+td.Title, td)
}

func (t *TodoTool) list(ctx context.Context) (*Result, error) {
	var todos []*types.Todo
	err := t.store.Scan(ctx, []string{"todo"}, func(key string, data json.RawMessage) error {
		var td types.Todo
		if err := json.Unmarshal(data, &td); err != nil {
			return nil // skip corrupt records
		}
		todos = append(todos, &td)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].CreatedAt.Before(todos[j].CreatedAt) })
	return jsonResult(fmt.Sprintf("%d todos", len(todos)), todos)
}

func (t *TodoTool) apply(ctx context.Context, id string, ev todo.Event) (*Result, error) {
	td, err := t.load(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := todo.NewMachine(td)
	if !machine.Apply(ev) {
		return &Result{
			Title:    td.Title,
			Output:   fmt.Sprintf("no change: event not applicable in state %q", td.State),
			Metadata: map[string]any{"changed": false, "state": string(td.State)},
		}, nil
	}

	if err := t.store.Put(ctx, todoPath(td.ID), td); err != nil {
		return nil, fmt.Errorf("failed to save todo: %w", err)
	}
	event.Publish(event.Event{Type: event.TodoUpdated, Data: td})

	res, err := jsonResult(td.Title, td)
	if err != nil {
		return nil, err
	}
	res.Metadata = map[string]any{"changed": true, "state": string(td.State)}
	return res, nil
}

func (t *TodoTool) load(ctx context.Context, id string) (*types.Todo, error) {
	if id == "" {
		return nil, errors.New("todo id required")
	}
	var td types.Todo
	if err := t.store.Get(ctx, todoPath(id), &td); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("todo %q not found", id)
		}
		return nil, err
	}
	return &td, nil
}

func todoPath(id string) []string {
	return []string{"todo", id}
}
