package quizgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
)

// displayMarker prefixes every option letter in labeled options.
const displayMarker = "🔵"

// BuildQuestions builds the multiple-choice and fill-in-the-blank
// questions for one pair in one direction. index is 1-based within the
// direction and names the questions' IDs, so IDs are stable across runs
// for the same pair ordering. distractors must already exclude the
// correct answer (see SampleDistractors).
//
// Options are shuffled with rng, then letters A, B, C, ... are assigned
// in shuffled order. An empty distractor list yields a single-option
// question, degenerate but valid.
func BuildQuestions(pair drugs.Pair, dir Direction, index int, distractors []string, rng *rand.Rand) (MultipleChoiceQuestion, FillInTheBlankQuestion) {
	prompt := dir.Prompt(pair)
	answer := dir.Answer(pair)

	options := make([]string, 0, len(distractors)+1)
	options = append(options, distractors...)
	options = append(options, answer)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	labeled := make([]LabeledOption, len(options))
	for i, text := range options {
		label := string(rune('A' + i))
		labeled[i] = LabeledOption{
			Label:        label,
			DisplayLabel: displayMarker + " " + label,
			Text:         text,
		}
	}

	mc := MultipleChoiceQuestion{
		ID:             fmt.Sprintf("%s-mc-%d", dir, index),
		Question:       fmt.Sprintf("What is the %s for %s?", dir.TargetKind(), prompt),
		Options:        options,
		LabeledOptions: labeled,
		Answer:         answer,
	}

	fib := FillInTheBlankQuestion{
		ID:       fmt.Sprintf("%s-fib-%d", dir, index),
		Question: fmt.Sprintf("%s → ________ (%s)", prompt, dir.TargetKind()),
		Answer:   answer,
	}

	return mc, fib
}
