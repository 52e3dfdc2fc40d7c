package tool

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceDouge/dadgpt/internal/config"
	"github.com/PatriceDouge/dadgpt/pkg/types"
)

func newConfigToolForTest(t *testing.T) (*ConfigTool, string) {
	t.Helper()
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "config.json")
	resolver := config.New(
		config.WithGlobalPath(globalPath),
		config.WithProjectDir(dir),
	)
	return NewConfigTool(resolver), globalPath
}

func TestConfigToolGetRedactsAPIKeys(t *testing.T) {
	tool, globalPath := newConfigToolForTest(t)
	doc := `{"provider": {"anthropic": {"apiKey": "sk-secret"}}}`
	require.NoError(t, os.WriteFile(globalPath, []byte(doc), 0o644))

	res, err := tool.Execute(context.Background(), json.RawMessage(`{"action":"get"}`), &Context{})
	require.NoError(t, err)

	var cfg types.Config
	require.NoError(t, json.Unmarshal([]byte(res.Output), &cfg))
	assert.Equal(t, "********", cfg.Provider["anthropic"].APIKey)
	assert.NotContains(t, res.Output, "sk-secret")
}

func TestConfigToolSetMergesIntoGlobal(t *testing.T) {
	tool, globalPath := newConfigToolForTest(t)

	input := `{"action":"set","settings":{"theme":"light"}}`
	_, err := tool.Execute(context.Background(), json.RawMessage(input), &Context{})
	require.NoError(t, err)

	data, err := os.ReadFile(globalPath)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "light", doc["theme"])
}

func TestConfigToolSetRequiresSettings(t *testing.T) {
	tool, _ := newConfigToolForTest(t)
	_, err := tool.Execute(context.Background(), json.RawMessage(`{"action":"set"}`), &Context{})
	assert.Error(t, err)
}

func TestConfigToolUnknownAction(t *testing.T) {
	tool, _ := newConfigToolForTest(t)
	_, err := tool.Execute(context.Background(), json.RawMessage(`{"action":"reload"}`), &Context{})
	assert.Error(t, err)
}
