// Package permission decides whether a tool invocation is allowed, denied,
// or needs user confirmation.
//
// A ruleset holds three pattern lists: deny, allow, ask. A tool id is
// matched against each list (deny first, then allow, then ask); the first
// list containing a matching pattern decides. A tool matching no list at
// all resolves to ask, so an unknown tool always requires confirmation
// rather than running silently.
//
// Patterns are exact ("goal"), universal ("*"), or prefix ("file.*", which
// matches "file" itself and anything under "file.").
package permission
