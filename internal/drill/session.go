// Package drill runs an interactive terminal practice session over
// generated quiz questions. Nothing is persisted; the session score
// lives and dies with the process.
package drill

import (
	"fmt"
	"strings"

	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
)

// Format selects which question format a session drills.
type Format string

const (
	FormatMultipleChoice Format = "mc"
	FormatFillInTheBlank Format = "fib"
)

// ParseFormat maps a CLI flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mc", "multiple_choice":
		return FormatMultipleChoice, nil
	case "fib", "fill_in_the_blank":
		return FormatFillInTheBlank, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be mc or fib", s)
	}
}

// Question is one drillable question in either format. Exactly one of
// MC and FIB is set.
type Question struct {
	MC  *quizgen.MultipleChoiceQuestion
	FIB *quizgen.FillInTheBlankQuestion
}

// Questions extracts up to count questions of the given direction and
// format from doc, in document order. count <= 0 means all.
func Questions(doc quizgen.Document, dir quizgen.Direction, format Format, count int) []Question {
	set := doc.Set(dir)

	var qs []Question
	switch format {
	case FormatFillInTheBlank:
		for i := range set.FillInTheBlank {
			qs = append(qs, Question{FIB: &set.FillInTheBlank[i]})
		}
	default:
		for i := range set.MultipleChoice {
			qs = append(qs, Question{MC: &set.MultipleChoice[i]})
		}
	}

	if count > 0 && count < len(qs) {
		qs = qs[:count]
	}
	return qs
}

// CheckAnswer compares a typed fill-in-the-blank answer against the
// expected one, ignoring case and surrounding whitespace. Drug names
// are case-preserved in output but learners shouldn't lose a point
// over capitalization.
func CheckAnswer(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
}
