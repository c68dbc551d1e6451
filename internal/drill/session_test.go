package drill

import (
	"testing"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
	"github.com/carlyclark26/PharmC-Quiz/internal/quizgen"
)

func testDoc() quizgen.Document {
	pairs := []drugs.Pair{
		{Brand: "Synthroid", Generic: "levothyroxine"},
		{Brand: "Lipitor", Generic: "atorvastatin"},
		{Brand: "Glucophage", Generic: "metformin"},
	}
	return quizgen.Assemble(pairs, quizgen.Options{Distractors: 2, Seed: 7, Seeded: true})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"mc", FormatMultipleChoice, false},
		{"multiple_choice", FormatMultipleChoice, false},
		{"FIB", FormatFillInTheBlank, false},
		{" fill_in_the_blank ", FormatFillInTheBlank, false},
		{"essay", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuestions_SelectsFormatAndDirection(t *testing.T) {
	doc := testDoc()

	mcs := Questions(doc, quizgen.GenericToBrand, FormatMultipleChoice, 0)
	if len(mcs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(mcs))
	}
	for _, q := range mcs {
		if q.MC == nil || q.FIB != nil {
			t.Fatalf("expected multiple-choice questions only, got %+v", q)
		}
	}
	if mcs[0].MC.ID != "generic_to_brand-mc-1" {
		t.Errorf("unexpected first question: %q", mcs[0].MC.ID)
	}

	fibs := Questions(doc, quizgen.BrandToGeneric, FormatFillInTheBlank, 0)
	if len(fibs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(fibs))
	}
	if fibs[0].FIB == nil || fibs[0].FIB.ID != "brand_to_generic-fib-1" {
		t.Errorf("unexpected first question: %+v", fibs[0])
	}
}

func TestQuestions_CountLimits(t *testing.T) {
	doc := testDoc()

	if got := Questions(doc, quizgen.BrandToGeneric, FormatMultipleChoice, 2); len(got) != 2 {
		t.Errorf("count 2: got %d questions", len(got))
	}
	if got := Questions(doc, quizgen.BrandToGeneric, FormatMultipleChoice, 50); len(got) != 3 {
		t.Errorf("count beyond size: got %d questions", len(got))
	}
	if got := Questions(doc, quizgen.BrandToGeneric, FormatMultipleChoice, 0); len(got) != 3 {
		t.Errorf("count 0 means all: got %d questions", len(got))
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		got, want string
		ok        bool
	}{
		{"levothyroxine", "levothyroxine", true},
		{"Levothyroxine", "levothyroxine", true},
		{"  levothyroxine  ", "levothyroxine", true},
		{"LIPITOR", "Lipitor", true},
		{"atorvastatin", "levothyroxine", false},
		{"", "levothyroxine", false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.got, tt.want); got != tt.ok {
			t.Errorf("CheckAnswer(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}
