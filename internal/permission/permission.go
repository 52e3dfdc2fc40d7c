package permission

import "github.com/PatriceDouge/dadgpt/pkg/types"

// Decision is the outcome of a permission check.
type Decision string

const (
	Allow Decision = "allow"
	Deny  Decision = "deny"
	Ask   Decision = "ask"
)

// EvaluateRules evaluates a ruleset for a tool id. Deny wins over allow,
// allow over ask; no match at all resolves to Ask. The function is total:
// it returns exactly one of the three decisions for every input.
func EvaluateRules(tool string, rs types.Ruleset) Decision {
	if matchesAny(rs.Deny, tool) {
		return Deny
	}
	if matchesAny(rs.Allow, tool) {
		return Allow
	}
	if matchesAny(rs.Ask, tool) {
		return Ask
	}
	return Ask
}
