package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/carlyclark26/PharmC-Quiz/internal/store"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect archived generation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent archived runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer s.Close()

		runs, err := s.ListRuns(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}

		if len(runs) == 0 {
			fmt.Println("No archived runs found.")
			return nil
		}

		// Header.
		fmt.Printf("%-36s  %-19s  %-5s  %-11s  %-20s  %s\n",
			"ID", "Timestamp", "Pairs", "Distractors", "Seed", "Seeded")
		fmt.Println(strings.Repeat("─", 110))

		for _, r := range runs {
			seed := "-"
			if r.Seeded {
				seed = fmt.Sprintf("%d", r.Seed)
			}
			fmt.Printf("%-36s  %-19s  %-5d  %-11d  %-20s  %v\n",
				r.ID,
				r.CreatedAt.Format("2006-01-02 15:04:05"),
				r.PairCount,
				r.Distractors,
				seed,
				r.Seeded)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the stored JSON document of one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer s.Close()

		rec, err := s.GetRun(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Print(rec.Document)
		return nil
	},
}

func init() {
	runsListCmd.Flags().Int("limit", 20, "Maximum number of runs to list")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
