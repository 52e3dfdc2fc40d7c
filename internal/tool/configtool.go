package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PatriceDouge/dadgpt/internal/config"
	"github.com/PatriceDouge/dadgpt/internal/event"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

const configDescription = `Read or update dadgpt settings. Actions:
- get: show the resolved configuration (API keys redacted)
- set: deep-merge the given settings into the global config file

Settings written by set land in the global document; project-local config
and environment variables still take precedence when resolving.`

// ConfigTool exposes the resolved configuration to the agent and lets it
// persist settings through the resolver.
type ConfigTool struct {
	resolver *config.Resolver
}

// NewConfigTool creates a config tool backed by the resolver.
func NewConfigTool(resolver *config.Resolver) *ConfigTool {
	return &ConfigTool{resolver: resolver}
}

// ConfigInput is the input for the config tool.
type ConfigInput struct {
	Action   string         `json:"action"`
	Settings map[string]any `json:"settings,omitempty"`
}

func (t *ConfigTool) ID() string          { return "config" }
func (t *ConfigTool) Description() string { return configDescription }

func (t *ConfigTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"action": {"type": "string", "enum": ["get", "set"], "description": "Operation to perform"},
			"settings": {"type": "object", "description": "Partial config to merge (set)"}
		},
		"required": ["action"]
	}`)
}

func (t *ConfigTool) Execute(ctx context.Context, input json.RawMessage, toolCtx *Context) (*Result, error) {
	var params ConfigInput
	if err := json.Unmarshal(input, &params); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	switch params.Action {
	case "get":
		cfg, err := t.resolver.Get()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config: %w", err)
		}
		return jsonResult("Configuration", redact(cfg))

	case "set":
		if len(params.Settings) == 0 {
			return nil, fmt.Errorf("set requires settings")
		}
		if err := t.resolver.Save(params.Settings); err != nil {
			return nil, err
		}
		event.Publish(event.Event{Type: event.ConfigUpdated, Data: event.ConfigUpdatedData{}})
		return &Result{Title: "Configuration saved", Output: "settings merged into global config"}, nil

	default:
		return nil, fmt.Errorf("unknown action %q", params.Action)
	}
}

// redact returns a copy of cfg with provider API keys masked.
func redact(cfg *types.Config) *types.Config {
	out := *cfg
	out.Provider = make(map[string]types.ProviderConfig, len(cfg.Provider))
	for id, p := range cfg.Provider {
		if p.APIKey != "" {
			p.APIKey = "********"
		}
		out.Provider[id] = p
	}
	return &out
}
