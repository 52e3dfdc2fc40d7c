package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PatriceDouge/dadgpt/internal/event"
	"github.com/PatriceDouge/dadgpt/internal/permission"
)

// Invoker runs tool invocations through the permission engine: deny fails
// with RejectedError, ask fails with ConfirmationError unless the context
// is pre-approved, allow executes.
type Invoker struct {
	registry *Registry
	engine   *permission.Engine
}

// NewInvoker creates an Invoker.
func NewInvoker(registry *Registry, engine *permission.Engine) *Invoker {
	return &Invoker{registry: registry, engine: engine}
}

// Invoke executes a tool by id after a permission check.
func (i *Invoker) Invoke(ctx context.Context, toolID string, input json.RawMessage, toolCtx *Context) (*Result, error) {
	t, ok := i.registry.Get(toolID)
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", toolID)
	}
	if toolCtx == nil {
		toolCtx = &Context{}
	}
	resource := extractResource(input)

	switch i.engine.Check(ctx, toolID, resource) {
	case permission.Deny:
		event.Publish(event.Event{
			Type: event.PermissionResolved,
			Data: event.PermissionResolvedData{Tool: toolID, Granted: false},
		})
		return nil, &RejectedError{Tool: toolID, Resource: resource}

	case permission.Ask:
		if !toolCtx.Approved {
			event.Publish(event.Event{
				Type: event.PermissionRequired,
				Data: event.PermissionRequiredData{Tool: toolID, Resource: resource},
			})
			return nil, &ConfirmationError{Tool: toolID, Resource: resource}
		}
		event.Publish(event.Event{
			Type: event.PermissionResolved,
			Data: event.PermissionResolvedData{Tool: toolID, Granted: true},
		})
	}

	return t.Execute(ctx, input, toolCtx)
}

// extractResource pulls the entity id out of a tool input, when present,
// so permission decisions can be logged against the record they touch.
func extractResource(input json.RawMessage) string {
	if len(input) == 0 {
		return ""
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(input, &probe); err != nil {
		return ""
	}
	return probe.ID
}
