package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/PatriceDouge/dadgpt/internal/logging"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

// Resolver resolves configuration from layered sources and caches the
// result. Construct one per process and pass it to consumers; tests can
// instantiate independent resolvers pointed at temp directories.
//
// The cache is lock-free. Two concurrent first-time Get calls may each run
// the full pipeline and the last one wins the cache slot; both produce the
// same value from the same sources, so the duplicated work is wasted but
// not incorrect.
type Resolver struct {
	globalPath string
	projectDir string
	overrides  map[string]any

	cache atomic.Pointer[types.Config]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGlobalPath sets the global config file path.
func WithGlobalPath(path string) Option {
	return func(r *Resolver) { r.globalPath = path }
}

// WithProjectDir sets the directory searched for the project config file.
func WithProjectDir(dir string) Option {
	return func(r *Resolver) { r.projectDir = dir }
}

// WithOverrides supplies caller overrides, merged last (highest precedence).
func WithOverrides(overrides map[string]any) Option {
	return func(r *Resolver) { r.overrides = overrides }
}

// New creates a Resolver. Without options it reads the standard global
// config path and looks for the project config in the current directory.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		globalPath: GlobalConfigPath(),
	}
	if cwd, err := os.Getwd(); err == nil {
		r.projectDir = cwd
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GlobalPath returns the global config file path this resolver reads.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// ProjectPath returns the project config file path this resolver reads.
func (r *Resolver) ProjectPath() string {
	return ProjectConfigPath(r.projectDir)
}

// Get returns the resolved configuration, running the resolution pipeline
// on the first call and serving the cache afterwards. A ValidationError is
// returned when the merged object violates the schema; no cache is
// populated in that case.
func (r *Resolver) Get() (*types.Config, error) {
	if cfg := r.cache.Load(); cfg != nil {
		return cfg, nil
	}

	merged := defaults()
	merged = deepMerge(merged, loadSourceFile(r.globalPath))
	merged = deepMerge(merged, loadSourceFile(r.ProjectPath()))
	merged = deepMerge(merged, envOverrides())
	merged = deepMerge(merged, r.overrides)

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	r.cache.Store(cfg)
	logging.Debug().
		Str("provider", cfg.DefaultProvider).
		Str("model", cfg.Model).
		Msg("config resolved")
	return cfg, nil
}

// Invalidate drops the cache; the next Get re-resolves from all sources.
func (r *Resolver) Invalidate() {
	r.cache.Store(nil)
}

// Save deep-merges partial into the current global config document (not the
// fully merged config) and persists it. The cache is invalidated only after
// a successful write; on failure a *SaveError is returned and the cache is
// left as it was.
func (r *Resolver) Save(partial map[string]any) error {
	doc := loadSourceFile(r.globalPath)
	if doc == nil {
		doc = make(map[string]any)
	}
	doc = deepMerge(doc, partial)

	if err := os.MkdirAll(filepath.Dir(r.globalPath), 0755); err != nil {
		return &SaveError{Code: SaveCodeMkdirFailed, Err: err}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &SaveError{Code: SaveCodeEncodeFailed, Err: err}
	}

	// Temp file plus rename so a crashed save never truncates the document.
	tmpPath := r.globalPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return &SaveError{Code: SaveCodeWriteFailed, Err: err}
	}
	if err := os.Rename(tmpPath, r.globalPath); err != nil {
		os.Remove(tmpPath)
		return &SaveError{Code: SaveCodeWriteFailed, Err: err}
	}

	r.Invalidate()
	return nil
}

// defaults returns the built-in configuration source. Every Config field
// has an entry here, which is what guarantees a fully populated Config
// after resolution.
func defaults() map[string]any {
	ruleset := types.DefaultRuleset()
	return map[string]any{
		"provider":        map[string]any{},
		"defaultProvider": "anthropic",
		"model":           "claude-sonnet-4-20250514",
		"theme":           types.ThemeDark,
		"permission": map[string]any{
			"deny":  toAnySlice(ruleset.Deny),
			"allow": toAnySlice(ruleset.Allow),
			"ask":   toAnySlice(ruleset.Ask),
		},
		"goalCategories": []any{"family", "health", "career", "finance", "personal", "home"},
		"family":         []any{},
	}
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// decode converts the merged raw document into a typed Config.
func decode(merged map[string]any) (*types.Config, error) {
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged config: %w", err)
	}
	var cfg types.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ValidationError{Field: "(root)", Message: err.Error()}
	}
	return &cfg, nil
}

// validate checks schema invariants of the final merged object. Per-source
// tolerance already happened during loading; failures here are fatal.
func validate(cfg *types.Config) error {
	switch cfg.Theme {
	case types.ThemeDark, types.ThemeLight:
	default:
		return &ValidationError{Field: "theme", Message: fmt.Sprintf("must be %q or %q, got %q", types.ThemeDark, types.ThemeLight, cfg.Theme)}
	}
	if cfg.DefaultProvider == "" {
		return &ValidationError{Field: "defaultProvider", Message: "must not be empty"}
	}
	if cfg.Model == "" {
		return &ValidationError{Field: "model", Message: "must not be empty"}
	}
	if len(cfg.GoalCategories) == 0 {
		return &ValidationError{Field: "goalCategories", Message: "must list at least one category"}
	}
	return nil
}
