// Package commands provides the CLI commands for dadgpt.
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/PatriceDouge/dadgpt/internal/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

// Global flags.
var (
	logLevel string
	autoYes  bool
)

var rootCmd = &cobra.Command{
	Use:   "dadgpt",
	Short: "dadgpt - personal command center",
	Long: `dadgpt is a personal command-center assistant that manages your goals,
todos, and family records.

Run 'dadgpt goal', 'dadgpt todo', 'dadgpt family' or 'dadgpt config' to work
with your records directly.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; ignore a missing file.
		_ = godotenv.Load()
		logging.Init(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Pretty: true,
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "WARN", "Log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().BoolVarP(&autoYes, "yes", "y", false, "Answer yes to confirmation prompts")

	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(familyCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetWorkDir returns the working directory.
func GetWorkDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
