package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/PatriceDouge/dadgpt/internal/logging"
)

// loadSourceFile reads one config source as a raw document. Every failure
// mode yields an empty override so resolution always completes: a missing
// file is silent, an empty file logs at debug, a malformed file logs at
// warn. JSONC comments and trailing commas are tolerated.
func loadSourceFile(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn().Str("path", path).Err(err).Msg("config source unreadable, skipping")
		}
		return nil
	}

	if strings.TrimSpace(string(data)) == "" {
		logging.Debug().Str("path", path).Msg("config source empty, skipping")
		return nil
	}

	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		logging.Warn().Str("path", path).Err(err).Msg("config source malformed, skipping")
		return nil
	}
	return doc
}

// envOverrides builds the environment-variable source. Each variable
// overrides exactly one field.
func envOverrides() map[string]any {
	doc := make(map[string]any)
	if provider := os.Getenv("DADGPT_PROVIDER"); provider != "" {
		doc["defaultProvider"] = provider
	}
	if model := os.Getenv("DADGPT_MODEL"); model != "" {
		doc["model"] = model
	}
	return doc
}
