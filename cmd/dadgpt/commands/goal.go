package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatriceDouge/dadgpt/internal/tool"
)

var (
	goalCategory    string
	goalDescription string
	goalDueDate     string
	goalMilestones  []string
	goalProgress    int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{
			Action:      "create",
			Title:       args[0],
			Category:    goalCategory,
			Description: goalDescription,
			DueDate:     goalDueDate,
			Milestones:  goalMilestones,
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{Action: "list"})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{Action: "get", ID: args[0]})
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id>",
	Short: "Update a goal's progress percentage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{
			Action:   "progress",
			ID:       args[0],
			Progress: &goalProgress,
		})
	},
}

var goalMilestoneCmd = &cobra.Command{
	Use:   "milestone <id> <milestone-id>",
	Short: "Mark a milestone completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{
			Action:      "milestone",
			ID:          args[0],
			MilestoneID: args[1],
		})
	},
}

func init() {
	goalAddCmd.Flags().StringVarP(&goalCategory, "category", "c", "", "Goal category")
	goalAddCmd.Flags().StringVarP(&goalDescription, "description", "d", "", "Goal description")
	goalAddCmd.Flags().StringVar(&goalDueDate, "due", "", "Target date (YYYY-MM-DD)")
	goalAddCmd.Flags().StringSliceVarP(&goalMilestones, "milestone", "m", nil, "Milestone title (repeatable)")
	goalProgressCmd.Flags().IntVarP(&goalProgress, "percent", "p", 0, "Progress percentage (0-100)")
	goalProgressCmd.MarkFlagRequired("percent")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalMilestoneCmd)

	// One subcommand per lifecycle event.
	for _, action := range []string{"start", "pause", "resume", "complete", "abandon"} {
		action := action
		goalCmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s <id>", action),
			Short: fmt.Sprintf("%s a goal", action),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return newApp().runTool(cmd.Context(), "goal", tool.GoalInput{Action: action, ID: args[0]})
			},
		})
	}
}
