package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/PatriceDouge/dadgpt/internal/event"
	"github.com/PatriceDouge/dadgpt/internal/goal"
	"github.com/PatriceDouge/dadgpt/internal/storage"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

const goalDescription = `Manage the user's goals. Actions:
- create: create a goal (title required; category, description, dueDate, milestones optional)
- get: fetch a goal by id
- list: list all goals
- start, pause, resume, complete, abandon: move a goal through its lifecycle
- progress: set progress percentage (0-100, clamped)
- milestone: mark a milestone completed (milestoneId required)

Lifecycle events that are not legal in the goal's current state are ignored;
the result reports whether the goal changed.`

// GoalTool manages goal records: it creates them through the goal factory
// and routes lifecycle actions through the goal state machine, persisting
// the outcome.
type GoalTool struct {
	store *storage.Storage
}

// GoalInput is the input for the goal tool.
type GoalInput struct {
	Action      string   `json:"action"`
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"` // YYYY-MM-DD or RFC 3339
	Milestones  []string `json:"milestones,omitempty"`
	Progress    *int     `json:"progress,omitempty"`
	MilestoneID string   `json:"milestoneId,omitempty"`
}

// NewGoalTool creates a goal tool backed by store.
func NewGoalTool(store *storage.Storage) *GoalTool {
	return &GoalTool{store: store}
}

func (t *GoalTool) ID() string          { return "goal" }
func (t *GoalTool) Description() string { return goalDescription }

func (t *GoalTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"action": {
				"type": "string",
				"enum": ["create", "get", "list", "start", "pause", "resume", "complete", "abandon", "progress", "milestone"],
				"description": "Operation to perform"
			},
			"id": {"type": "string", "description": "Goal id (required for everything except create and list)"},
			"title": {"type": "string", "description": "Goal title (create)"},
			"category": {"type": "string", "description": "Goal category (create)"},
			"description": {"type": "string", "description": "Goal description (create)"},
			"dueDate": {"type": "string", "description": "Target date, YYYY-MM-DD (create)"},
			"milestones": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Milestone titles (create)"
			},
			"progress": {"type": "integer", "description": "Progress percentage (progress action)"},
			"milestoneId": {"type": "string", "description": "Milestone id (milestone action)"}
		},
		"required": ["action"]
	}`)
}

func (t *GoalTool) Execute(ctx context.Context, input json.RawMessage, toolCtx *Context) (*Result, error) {
	var params GoalInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	switch params.Action {
	case "create":
		return t.create(ctx, params)
	case "get":
		g, err := t.load(ctx, params.ID)
		if err != nil {
			return nil, err
		}
		return jsonResult(g.Title, g)
	case "list":
		return t.list(ctx)
	case "start":
		return t.apply(ctx, params.ID, goal.Start{})
	case "pause":
		return t.apply(ctx, params.ID, goal.Pause{})
	case "resume":
		return t.apply(ctx, params.ID, goal.Resume{})
	case "complete":
		return t.apply(ctx, params.ID, goal.Complete{})
	case "abandon":
		return t.apply(ctx, params.ID, goal.Abandon{})
	case "progress":
		if params.Progress == nil {
			return nil, errors.New("progress action requires a progress value")
		}
		return t.apply(ctx, params.ID, goal.UpdateProgress{Progress: *params.Progress})
	case "milestone":
		if params.MilestoneID == "" {
			return nil, errors.New("milestone action requires milestoneId")
		}
		return t.apply(ctx, params.ID, goal.CompleteMilestone{MilestoneID: params.MilestoneID})
	default:
		return nil, fmt.Errorf("unknown action %q", params.Action)
	}
}

func (t *GoalTool) create(ctx context.Context, params GoalInput) (*Result, error) {
	if params.Title == "" {
		return nil, errors.New("create requires a title")
	}

	opts := []goal.Option{}
	if params.Category != "" {
		opts = append(opts, goal.WithCategory(params.Category))
	}
	if params.Description != "" {
		opts = append(opts, goal.WithDescription(params.Description))
	}
	if params.DueDate != "" {
		due, err := parseDate(params.DueDate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, goal.WithDueDate(due))
	}
	if len(params.Milestones) > 0 {
		milestones := make([]types.Milestone, 0, len(params.Milestones))
		for _, title := range params.Milestones {
			milestones = append(milestones, goal.NewMilestone(title))
		}
		opts = append(opts, goal.WithMilestones(milestones...))
	}

	g := goal.New(params.Title, opts...)
	if err := t.store.Put(ctx, goalPath(g.ID), g); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	event.Publish(event.Event{Type: event.GoalCreated, Data: g})
	return jsonResult("Created goal: "+g.Title, g)
}

func (t *GoalTool) list(ctx context.Context) (*Result, error) {
	var goals []*types.Goal
	err := t.store.Scan(ctx, []string{"goal"}, func(key string, data json.RawMessage) error {
		var g types.Goal
		if err := json.Unmarshal(data, &g); err != nil {
			return nil // skip corrupt records
		}
		goals = append(goals, &g)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return jsonResult(fmt.Sprintf("%d goals", len(goals)), goals)
}

// apply loads a goal, runs one lifecycle event through its machine, and
// persists the result when the event changed anything. An ignored event is
// reported, not failed.
func (t *GoalTool) apply(ctx context.Context, id string, ev goal.Event) (*Result, error) {
	g, err := t.load(ctx, id)
	if err != nil {
		return nil, err
	}

	machine := goal.NewMachine(g)
	if !machine.Apply(ev) {
		return &Result{
			Title:    g.Title,
			Output:   fmt.Sprintf("no change: event not applicable in state %q", g.State),
			Metadata: map[string]any{"changed": false, "state": string(g.State)},
		}, nil
	}

	if err := t.store.Put(ctx, goalPath(g.ID), g); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}
	event.Publish(event.Event{Type: event.GoalUpdated, Data: g})

	res, err := jsonResult(g.Title, g)
	if err != nil {
		return nil, err
	}
	res.Metadata = map[string]any{"changed": true, "state": string(g.State)}
	return res, nil
}

func (t *GoalTool) load(ctx context.Context, id string) (*types.Goal, error) {
	if id == "" {
		return nil, errors.New("goal id required")
	}
	var g types.Goal
	if err := t.store.Get(ctx, goalPath(id), &g); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("goal %q not found", id)
		}
		return nil, err
	}
	return &g, nil
}

func goalPath(id string) []string {
	return []string{"goal", id}
}

// parseDate accepts a bare date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC 3339)", s)
	}
	return d, nil
}
