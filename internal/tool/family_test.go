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

func TestFamilyToolListAndFilter(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "config.json")
	doc := `{"family": [
		{"name": "Ava", "relation": "daughter", "birthday": "2018-04-02"},
		{"name": "Sam", "relation": "son"}
	]}`
	require.NoError(t, os.WriteFile(globalPath, []byte(doc), 0o644))

	resolver := config.New(config.WithGlobalPath(globalPath), config.WithProjectDir(dir))
	tool := NewFamilyTool(resolver)

	res, err := tool.Execute(context.Background(), json.RawMessage(`{}`), &Context{})
	require.NoError(t, err)
	var members []types.FamilyMember
	require.NoError(t, json.Unmarshal([]byte(res.Output), &members))
	assert.Len(t, members, 2)

	res, err = tool.Execute(context.Background(), json.RawMessage(`{"name":"Ava"}`), &Context{})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(res.Output), &members))
	require.Len(t, members, 1)
	assert.Equal(t, "daughter", members[0].Relation)
}
