package permission

import (
	"context"

	"github.com/PatriceDouge/dadgpt/internal/config"
	"github.com/PatriceDouge/dadgpt/internal/logging"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Engine evaluates permission checks against the resolved configuration's
// ruleset. It never fails a caller's action because configuration is
// unavailable: if resolution errors, the built-in default ruleset is used
// instead.
type Engine struct {
	resolver *config.Resolver
}

// NewEngine creates an Engine backed by the given resolver.
func NewEngine(resolver *config.Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Check decides whether a tool may act on a resource, using the configured
// ruleset. The resource is advisory (logged, not matched against patterns).
func (e *Engine) Check(ctx context.Context, tool, resource string) Decision {
	rs := types.DefaultRuleset()
	if e.resolver != nil {
		cfg, err := e.resolver.Get()
		if err != nil {
			logging.Warn().Err(err).Msg("config unavailable, using default permission ruleset")
		} else {
			rs = cfg.Permission
		}
	}
	return e.CheckSync(tool, resource, rs)
}

// CheckSync evaluates a caller-supplied ruleset. Pure, no I/O.
func (e *Engine) CheckSync(tool, resource string, rs types.Ruleset) Decision {
	decision := EvaluateRules(tool, rs)
	logging.Debug().
		Str("tool", tool).
		Str("resource", resource).
		Str("decision", string(decision)).
		Msg("permission check")
	return decision
}

// IsAllowed reports whether the tool may run without confirmation.
func (e *Engine) IsAllowed(ctx context.Context, tool, resource string) bool {
	return e.Check(ctx, tool, resource) == Allow
}

// IsDenied reports whether the tool is denied outright.
func (e *Engine) IsDenied(ctx context.Context, tool, resource string) bool {
	return e.Check(ctx, tool, resource) == Deny
}

// RequiresPermission reports whether the tool needs user confirmation.
func (e *Engine) RequiresPermission(ctx context.Context, tool, resource string) bool {
	return e.Check(ctx, tool, resource) == Ask
}
