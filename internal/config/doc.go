// Package config resolves dadgpt configuration from layered sources.
//
// Sources are merged in increasing precedence:
//
//  1. built-in defaults
//  2. global config file (config.json under the dadgpt config directory)
//  3. project config file (dadgpt.json in the working directory)
//  4. environment variables (DADGPT_PROVIDER, DADGPT_MODEL)
//  5. caller-supplied overrides
//
// Individual sources are fault-tolerant: a missing, empty, or malformed
// file contributes nothing and never aborts resolution. Validation of the
// final merged object is strict and fails the resolution.
package config
