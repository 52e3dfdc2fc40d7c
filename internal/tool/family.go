package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PatriceDouge/dadgpt/internal/config"
)

const familyDescription = `Look up the user's family members (names, relations,
birthdays, notes) from configuration. Read-only.`

// FamilyTool exposes the configured family members to the agent.
type FamilyTool struct {
	resolver *config.Resolver
}

// NewFamilyTool creates a family tool backed by the resolver.
func NewFamilyTool(resolver *config.Resolver) *FamilyTool {
	return &FamilyTool{resolver: resolver}
}

func (t *FamilyTool) ID() string          { return "family" }
func (t *FamilyTool) Description() string { return familyDescription }

func (t *FamilyTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {"type": "string", "description": "Filter by member name (optional)"}
		}
	}`)
}

func (t *FamilyTool) Execute(ctx context.Context, input json.RawMessage, toolCtx *Context) (*Result, error) {
	var params struct {
		Name string `json:"name,omitempty"`
	}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &params); err != nil {
			return nil, fmt.Errorf("invalid input: %w", err)
		}
	}

	cfg, err := t.resolver.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config: %w", err)
	}

	members := cfg.Family
	if params.Name != "" {
		filtered := members[:0:0]
		for _, m := range members {
			if m.Name == params.Name {
				filtered = append(filtered, m)
			}
		}
		members = filtered
	}
	return jsonResult(fmt.Sprintf("%d family members", len(members)), members)
}
