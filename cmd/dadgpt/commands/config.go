package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/PatriceDouge/dadgpt/internal/tool"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "config", tool.ConfigInput{Action: "get"})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a top-level setting in the global config file",
	Long: `Set a top-level setting, e.g.:

  dadgpt config set theme light
  dadgpt config set model claude-sonnet-4-20250514

Nested keys use dots: 'provider.anthropic.apiKey'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "config", tool.ConfigInput{
			Action:   "set",
			Settings: settingFromKeyPath(args[0], args[1]),
		})
	},
}

// settingFromKeyPath turns "provider.anthropic.apiKey" + value into a
// nested partial document for the resolver's deep merge.
func settingFromKeyPath(key, value string) map[string]any {
	parts := strings.Split(key, ".")
	doc := map[string]any{parts[len(parts)-1]: any(value)}
	for i := len(parts) - 2; i >= 0; i-- {
		doc = map[string]any{parts[i]: any(doc)}
	}
	return doc
}

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "List family members",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := map[string]any{}
		if len(args) == 1 {
			input["name"] = args[0]
		}
		return newApp().runTool(cmd.Context(), "family", input)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
