// Package tool provides the tool framework the agent invokes: a registry
// of tools and an invoker that runs the permission check before execution.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool defines the interface for all tools.
type Tool interface {
	// ID returns the tool identifier matched against permission patterns.
	ID() string

	// Description returns the tool description shown to the agent.
	Description() string

	// Parameters returns the JSON Schema for tool parameters.
	Parameters() json.RawMessage

	// Execute executes the tool with the given input.
	Execute(ctx context.Context, input json.RawMessage, toolCtx *Context) (*Result, error)
}

// Context provides execution context to tools.
type Context struct {
	SessionID string
	WorkDir   string

	// Approved marks that the user already confirmed this invocation, so an
	// "ask" decision proceeds instead of requesting confirmation.
	Approved bool

	Extra map[string]any
}

// Result represents the output of a tool execution.
type Result struct {
	Title    string         `json:"title"`
	Output   string         `json:"output"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// jsonResult renders v as indented JSON output.
func jsonResult(title string, v any) (*Result, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &Result{Title: title, Output: string(data)}, nil
}
