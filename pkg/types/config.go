package types

// Config is the fully resolved dadgpt configuration. After resolution every
// field is populated: defaults are applied before any user-supplied source,
// so consumers never need to nil-check top-level fields.
type Config struct {
	// Provider credentials, keyed by provider id ("anthropic", "openai", ...)
	Provider map[string]ProviderConfig `json:"provider"`

	// DefaultProvider selects which provider entry is used when a tool or
	// command does not name one.
	DefaultProvider string `json:"defaultProvider"`

	// Model is the default model id.
	Model string `json:"model"`

	// Theme for terminal output. "dark" or "light".
	Theme string `json:"theme"`

	// Permission is the tool permission ruleset.
	Permission Ruleset `json:"permission"`

	// GoalCategories is the ordered list of category names offered when
	// creating goals. Order is preserved from the highest-precedence source.
	GoalCategories []string `json:"goalCategories"`

	// Family lists the members of the user's family.
	Family []FamilyMember `json:"family"`
}

// ProviderConfig holds credentials for a single model provider.
type ProviderConfig struct {
	APIKey  string `json:"apiKey,omitempty"`
	BaseURL string `json:"baseURL,omitempty"`
}

// Ruleset holds the three pattern lists consulted for a permission check.
// Deny wins over allow, allow over ask; a tool matching nothing falls back
// to ask. Patterns are case-sensitive; duplicates are harmless.
type Ruleset struct {
	Deny  []string `json:"deny"`
	Allow []string `json:"allow"`
	Ask   []string `json:"ask"`
}

// DefaultRuleset is the built-in ruleset used when no configuration is
// available: read-style and record-management tools run freely, anything
// that writes files or runs commands asks first.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Deny:  []string{},
		Allow: []string{"read", "goal", "todo", "project", "family"},
		Ask:   []string{"write", "bash"},
	}
}

// FamilyMember describes one member of the user's family.
type FamilyMember struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"` // "spouse", "daughter", ...
	Birthday string `json:"birthday,omitempty"` // YYYY-MM-DD
	Notes    string `json:"notes,omitempty"`
}

// Themes accepted by config validation.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)
