package cmd

import (
	"github.com/carlyclark26/PharmC-Quiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pharmc",
	Short: "Practice-quiz generator for drug brand/generic names",
	Long:  "PharmC — generates multiple-choice and fill-in-the-blank quizzes from a CSV of drug brand/generic name pairs, in both naming directions.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite archive database (overrides PHARMC_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the archive path using --db flag (highest
// priority), then PHARMC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
