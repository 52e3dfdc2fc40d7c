package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingFromKeyPath(t *testing.T) {
	assert.Equal(t,
		map[string]any{"theme": any("light")},
		settingFromKeyPath("theme", "light"))

	assert.Equal(t,
		map[string]any{"provider": any(map[string]any{
			"anthropic": any(map[string]any{"apiKey": any("sk-123")}),
		})},
		settingFromKeyPath("provider.anthropic.apiKey", "sk-123"))
}
