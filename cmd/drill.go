package cmd

import (
	"fmt"

	"github.com/carlyclark26/PharmC-Quiz/internal/drill"
	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice generated questions interactively",
	Long: `Run an interactive practice session in the terminal. Questions are
generated in memory from the CSV; nothing is written or recorded. The
session score is shown at the end and then discarded.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("data", "data/top_200_drugs.csv", "Path to CSV of brand/generic pairs")
	drillCmd.Flags().String("direction", string(quizgen.BrandToGeneric), "Direction: brand_to_generic or generic_to_brand")
	drillCmd.Flags().String("format", "mc", "Question format: mc or fib")
	drillCmd.Flags().Int("count", 10, "Number of questions to drill (0 for all)")
	drillCmd.Flags().Int("distractors", quizgen.DefaultDistractors, "Number of distractors per multiple-choice question")
	drillCmd.Flags().Int64("seed", 0, "Random seed (omit for a random shuffle)")
}

func runDrill(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	dirVal, _ := cmd.Flags().GetString("direction")
	formatVal, _ := cmd.Flags().GetString("format")
	count, _ := cmd.Flags().GetInt("count")
	distractors, _ := cmd.Flags().GetInt("distractors")
	seed, _ := cmd.Flags().GetInt64("seed")

	dir, err := parseDirection(dirVal)
	if err != nil {
		return err
	}
	format, err := drill.ParseFormat(formatVal)
	if err != nil {
		return err
	}

	pairs, err := drugs.LoadCSV(dataPath)
	if err != nil {
		return err
	}

	doc := quizgen.Assemble(pairs, quizgen.Options{
		Distractors: distractors,
		Seed:        seed,
		Seeded:      cmd.Flags().Changed("seed"),
	})

	questions := drill.Questions(doc, dir, format, count)
	if len(questions) == 0 {
		fmt.Println("No questions to drill.")
		return nil
	}

	final, err := drill.Run(questions)
	if err != nil {
		return err
	}

	fmt.Printf("Session: %d/%d correct\n", final.Correct(), final.Total())
	return nil
}
