package quizgen

import (
	"math/rand/v2"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
)

// DefaultDistractors is the standard number of wrong options per
// multiple-choice question.
const DefaultDistractors = 3

// Options configures one generation run.
type Options struct {
	// Distractors is the number of wrong options per multiple-choice
	// question. Fewer are emitted when the pool runs short.
	Distractors int

	// Seed seeds the run's random source when Seeded is true. Two runs
	// with the same pairs, Distractors, and Seed produce identical
	// documents.
	Seed int64

	// Seeded selects reproducible generation. When false the source is
	// seeded randomly and runs are not reproducible.
	Seeded bool
}

// Assemble generates the full quiz document for pairs: every pair, in
// both directions, in both formats, so 4×len(pairs) questions total.
// Pairs are iterated in their given order and per-direction indices
// start at 1, keeping question IDs stable for a fixed input order.
//
// A single random source drives the whole run, threaded explicitly
// through sampling and shuffling, so one seed reproduces the entire
// document and independent runs with distinct seeds can share a
// process. An empty pair list yields a document with four empty
// question lists.
func Assemble(pairs []drugs.Pair, opts Options) Document {
	rng := newRand(opts)

	doc := Document{
		BrandToGeneric: newQuestionSet(len(pairs)),
		GenericToBrand: newQuestionSet(len(pairs)),
	}

	for _, dir := range Directions() {
		set := doc.Set(dir)

		// One answer pool per direction; the sampler excludes the
		// current correct answer itself.
		pool := make([]string, len(pairs))
		for i, p := range pairs {
			pool[i] = dir.Answer(p)
		}

		for i, p := range pairs {
			distractors := SampleDistractors(rng, pool, dir.Answer(p), opts.Distractors)
			mc, fib := BuildQuestions(p, dir, i+1, distractors, rng)
			set.MultipleChoice = append(set.MultipleChoice, mc)
			set.FillInTheBlank = append(set.FillInTheBlank, fib)
		}
	}

	return doc
}

func newQuestionSet(n int) QuestionSet {
	return QuestionSet{
		MultipleChoice: make([]MultipleChoiceQuestion, 0, n),
		FillInTheBlank: make([]FillInTheBlankQuestion, 0, n),
	}
}

func newRand(opts Options) *rand.Rand {
	if opts.Seeded {
		return rand.New(rand.NewPCG(uint64(opts.Seed), uint64(opts.Seed)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
