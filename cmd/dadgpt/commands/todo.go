package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatriceDouge/dadgpt/internal/tool"
)

var (
	todoDescription string
	todoPriority    string
	todoDueDate     string
	todoTags        []string
	todoGoalID      string
	todoBlocker     string
	todoDeferDate   string
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{
			Action:      "create",
			Title:       args[0],
			Description: todoDescription,
			Priority:    todoPriority,
			DueDate:     todoDueDate,
			Tags:        todoTags,
			GoalID:      todoGoalID,
		})
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all todos",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{Action: "list"})
	},
}

var todoShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{Action: "get", ID: args[0]})
	},
}

var todoBlockCmd = &cobra.Command{
	Use:   "block <id>",
	Short: "Mark a todo blocked by another todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{
			Action:    "block",
			ID:        args[0],
			BlockedBy: todoBlocker,
		})
	},
}

var todoDeferCmd = &cobra.Command{
	Use:   "defer <id>",
	Short: "Defer a todo to a later date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{
			Action:  "defer",
			ID:      args[0],
			DueDate: todoDeferDate,
		})
	},
}

func init() {
	todoAddCmd.Flags().StringVarP(&todoDescription, "description", "d", "", "Todo description")
	todoAddCmd.Flags().StringVarP(&todoPriority, "priority", "p", "", "Priority (low|medium|high)")
	todoAddCmd.Flags().StringVar(&todoDueDate, "due", "", "Due date (YYYY-MM-DD)")
	todoAddCmd.Flags().StringSliceVarP(&todoTags, "tag", "t", nil, "Tag (repeatable)")
	todoAddCmd.Flags().StringVarP(&todoGoalID, "goal", "g", "", "Linked goal id")
	todoBlockCmd.Flags().StringVar(&todoBlocker, "by", "", "Id of the blocking todo")
	todoBlockCmd.MarkFlagRequired("by")
	todoDeferCmd.Flags().StringVar(&todoDeferDate, "until", "", "Target date (YYYY-MM-DD)")
	todoDeferCmd.MarkFlagRequired("until")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoShowCmd)
	todoCmd.AddCommand(todoBlockCmd)
	todoCmd.AddCommand(todoDeferCmd)

	for _, action := range []string{"start", "complete", "unblock", "cancel", "reopen"} {
		action := action
		todoCmd.AddCommand(&cobra.Command{
			Use:   fmt.Sprintf("%s <id>", action),
			Short: fmt.Sprintf("%s a todo", action),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return newApp().runTool(cmd.Context(), "todo", tool.TodoInput{Action: action, ID: args[0]})
			},
		})
	}
}
