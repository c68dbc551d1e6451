// Package quizgen builds practice-quiz questions from drug name pairs.
// It produces multiple-choice and fill-in-the-blank questions in both
// naming directions, reproducibly under a fixed seed.
package quizgen

import "github.com/carlyclark26/PharmC-Quiz/internal/drugs"

// Direction selects which name is the prompt and which is the answer.
type Direction string

const (
	// BrandToGeneric asks for the generic equivalent of a brand name.
	BrandToGeneric Direction = "brand_to_generic"

	// GenericToBrand asks for the brand equivalent of a generic name.
	GenericToBrand Direction = "generic_to_brand"
)

// Directions returns both directions in the fixed generation order.
func Directions() []Direction {
	return []Direction{BrandToGeneric, GenericToBrand}
}

// Prompt returns the field of p shown to the learner.
func (d Direction) Prompt(p drugs.Pair) string {
	if d == BrandToGeneric {
		return p.Brand
	}
	return p.Generic
}

// Answer returns the field of p the learner must produce.
func (d Direction) Answer(p drugs.Pair) string {
	if d == BrandToGeneric {
		return p.Generic
	}
	return p.Brand
}

// TargetKind names the answer field for question text: "generic" for
// BrandToGeneric, "brand" for GenericToBrand.
func (d Direction) TargetKind() string {
	if d == BrandToGeneric {
		return "generic"
	}
	return "brand"
}

// LabeledOption pairs an option with its letter and a decorative
// display marker for rendering.
type LabeledOption struct {
	Label        string `json:"label"`
	DisplayLabel string `json:"display_label"`
	Text         string `json:"text"`
}

// MultipleChoiceQuestion is one shuffled multiple-choice question.
// Answer appears exactly once among Options; LabeledOptions mirrors
// Options with letters assigned in shuffled order.
type MultipleChoiceQuestion struct {
	ID             string          `json:"id"`
	Question       string          `json:"question"`
	Options        []string        `json:"options"`
	LabeledOptions []LabeledOption `json:"labeled_options"`
	Answer         string          `json:"answer"`
}

// FillInTheBlankQuestion is one fill-in-the-blank question.
type FillInTheBlankQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionSet holds both question formats for one direction, in pair
// order.
type QuestionSet struct {
	MultipleChoice []MultipleChoiceQuestion `json:"multiple_choice"`
	FillInTheBlank []FillInTheBlankQuestion `json:"fill_in_the_blank"`
}

// Document is a fully assembled quiz: both directions, both formats.
// It is immutable once returned by Assemble.
type Document struct {
	BrandToGeneric QuestionSet `json:"brand_to_generic"`
	GenericToBrand QuestionSet `json:"generic_to_brand"`
}

// Set returns the question set for direction d.
func (doc *Document) Set(d Direction) *QuestionSet {
	if d == BrandToGeneric {
		return &doc.BrandToGeneric
	}
	return &doc.GenericToBrand
}
