package cmd

import (
	"context"
	"fmt"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
	"github.com/carlyclark26/PharmC-Quiz/internal/quizexport"
	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
	"github.com/carlyclark26/PharmC-Quiz/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz JSON from a CSV of brand/generic pairs",
	Long: `Generate quiz questions for every pair, in both directions, in both
formats, and write them as a structured JSON document.

With --seed the output is reproducible: the same data, distractor count
and seed always produce byte-identical JSON. Without --seed each run is
shuffled differently.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("data", "data/top_200_drugs.csv", "Path to CSV of brand/generic pairs")
	generateCmd.Flags().String("output", "quizzes.json", "Where to write the generated JSON")
	generateCmd.Flags().Int("distractors", quizgen.DefaultDistractors, "Number of distractors per multiple-choice question")
	generateCmd.Flags().Int64("seed", 0, "Random seed for reproducible output (omit for a random shuffle)")
	generateCmd.Flags().Bool("store", false, "Archive this run in the local SQLite database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	outputPath, _ := cmd.Flags().GetString("output")
	distractors, _ := cmd.Flags().GetInt("distractors")
	seed, _ := cmd.Flags().GetInt64("seed")
	archive, _ := cmd.Flags().GetBool("store")

	if distractors < 1 {
		return fmt.Errorf("--distractors must be positive, got %d", distractors)
	}

	pairs, err := drugs.LoadCSV(dataPath)
	if err != nil {
		return err
	}

	opts := quizgen.Options{
		Distractors: distractors,
		Seed:        seed,
		Seeded:      cmd.Flags().Changed("seed"),
	}
	doc := quizgen.Assemble(pairs, opts)

	if err := quizexport.WriteFile(outputPath, doc); err != nil {
		return err
	}

	if archive {
		if err := archiveRun(cmd, doc, pairs, opts); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %s with %d drug pairs.\n", outputPath, len(pairs))
	return nil
}

func archiveRun(cmd *cobra.Command, doc quizgen.Document, pairs []drugs.Pair, opts quizgen.Options) error {
	raw, err := quizexport.Marshal(doc)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer s.Close()

	id, err := s.SaveRun(context.Background(), store.RunRecord{
		PairCount:   len(pairs),
		Distractors: opts.Distractors,
		Seed:        opts.Seed,
		Seeded:      opts.Seeded,
		Document:    string(raw),
	})
	if err != nil {
		return fmt.Errorf("archive run: %w", err)
	}

	fmt.Printf("Archived run %s\n", id)
	return nil
}
