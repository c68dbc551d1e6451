package cmd

import (
	"fmt"
	"strings"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
	"github.com/carlyclark26/PharmC-Quiz/internal/ui/theme"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a sample of generated questions to the terminal",
	Long: `Generate questions in memory and print a styled sample — no files
written. Useful for checking question wording and distractor quality
before generating the full document.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("data", "data/top_200_drugs.csv", "Path to CSV of brand/generic pairs")
	previewCmd.Flags().String("direction", string(quizgen.BrandToGeneric), "Direction: brand_to_generic or generic_to_brand")
	previewCmd.Flags().Int("count", 5, "Number of questions to show")
	previewCmd.Flags().Int("distractors", quizgen.DefaultDistractors, "Number of distractors per multiple-choice question")
	previewCmd.Flags().Int64("seed", 0, "Random seed (omit for a random shuffle)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	dataPath, _ := cmd.Flags().GetString("data")
	dirVal, _ := cmd.Flags().GetString("direction")
	count, _ := cmd.Flags().GetInt("count")
	distractors, _ := cmd.Flags().GetInt("distractors")
	seed, _ := cmd.Flags().GetInt64("seed")

	dir, err := parseDirection(dirVal)
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
	set := doc.Set(dir)

	if count > len(set.MultipleChoice) {
		count = len(set.MultipleChoice)
	}
	if count == 0 {
		fmt.Println("No questions to preview.")
		return nil
	}

	fmt.Println(theme.Title.Render(fmt.Sprintf("Preview — %s (%d of %d questions)", dir, count, len(set.MultipleChoice))))
	fmt.Println()

	for i := 0; i < count; i++ {
		mc := set.MultipleChoice[i]
		fib := set.FillInTheBlank[i]

		var b strings.Builder
		b.WriteString(theme.Body.Bold(true).Render(mc.Question))
		b.WriteString("\n")
		for _, opt := range mc.LabeledOptions {
			line := fmt.Sprintf("%s)  %s", opt.DisplayLabel, opt.Text)
			if opt.Text == mc.Answer {
				b.WriteString(theme.Correct.Render(line))
			} else {
				b.WriteString(theme.Unselected.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(fib.Question))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("answer: " + fib.Answer))

		fmt.Println(theme.Card.Render(b.String()))
		fmt.Println()
	}

	return nil
}

// parseDirection maps a CLI flag value to a quiz direction.
func parseDirection(val string) (quizgen.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case string(quizgen.BrandToGeneric):
		return quizgen.BrandToGeneric, nil
	case string(quizgen.GenericToBrand):
		return quizgen.GenericToBrand, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be %s or %s",
			val, quizgen.BrandToGeneric, quizgen.GenericToBrand)
	}
}
