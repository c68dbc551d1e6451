package quizgen

import (
	"testing"

	"github.com/carlyclark26/PharmC-Quiz/internal/drugs"
)

func TestBuildQuestions_MultipleChoice(t *testing.T) {
	pair := drugs.Pair{Brand: "Synthroid", Generic: "levothyroxine"}
	distractors := []string{"atorvastatin", "metformin", "lisinopril"}

	mc, _ := BuildQuestions(pair, BrandToGeneric, 1, distractors, testRand(1))

	if mc.ID != "brand_to_generic-mc-1" {
		t.Errorf("unexpected id: %q", mc.ID)
	}
	if mc.Question != "What is the generic for Synthroid?" {
		t.Errorf("unexpected question: %q", mc.Question)
	}
	if mc.Answer != "levothyroxine" {
		t.Errorf("unexpected answer: %q", mc.Answer)
	}
	if len(mc.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(mc.Options))
	}

	found := 0
	for _, opt := range mc.Options {
		if opt == mc.Answer {
			found++
		}
	}
	if found != 1 {
		t.Errorf("answer should appear exactly once in options, appeared %d times", found)
	}
}

func TestBuildQuestions_LabelsFollowShuffledOrder(t *testing.T) {
	pair := drugs.Pair{Brand: "Lipitor", Generic: "atorvastatin"}
	distractors := []string{"levothyroxine", "metformin"}

	mc, _ := BuildQuestions(pair, BrandToGeneric, 3, distractors, testRand(9))

	if len(mc.LabeledOptions) != len(mc.Options) {
		t.Fatalf("labeled_options length %d != options length %d",
			len(mc.LabeledOptions), len(mc.Options))
	}
	for i, lo := range mc.LabeledOptions {
		wantLabel := string(rune('A' + i))
		if lo.Label != wantLabel {
			t.Errorf("option %d: label = %q, want %q", i, lo.Label, wantLabel)
		}
		if lo.DisplayLabel != "🔵 "+wantLabel {
			t.Errorf("option %d: display_label = %q", i, lo.DisplayLabel)
		}
		if lo.Text != mc.Options[i] {
			t.Errorf("option %d: text %q does not match option %q", i, lo.Text, mc.Options[i])
		}
	}
}

func TestBuildQuestions_FillInTheBlank(t *testing.T) {
	pair := drugs.Pair{Brand: "Synthroid", Generic: "levothyroxine"}

	tests := []struct {
		name         string
		dir          Direction
		index        int
		wantID       string
		wantQuestion string
		wantAnswer   string
	}{
		{
			name:         "brand to generic",
			dir:          BrandToGeneric,
			index:        1,
			wantID:       "brand_to_generic-fib-1",
			wantQuestion: "Synthroid → ________ (generic)",
			wantAnswer:   "levothyroxine",
		},
		{
			name:         "generic to brand",
			dir:          GenericToBrand,
			index:        7,
			wantID:       "generic_to_brand-fib-7",
			wantQuestion: "levothyroxine → ________ (brand)",
			wantAnswer:   "Synthroid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fib := BuildQuestions(pair, tt.dir, tt.index, nil, testRand(1))
			if fib.ID != tt.wantID {
				t.Errorf("id = %q, want %q", fib.ID, tt.wantID)
			}
			if fib.Question != tt.wantQuestion {
				t.Errorf("question = %q, want %q", fib.Question, tt.wantQuestion)
			}
			if fib.Answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", fib.Answer, tt.wantAnswer)
			}
		})
	}
}

func TestBuildQuestions_NoDistractors(t *testing.T) {
	pair := drugs.Pair{Brand: "Lipitor", Generic: "atorvastatin"}

	mc, _ := BuildQuestions(pair, GenericToBrand, 1, nil, testRand(1))

	if len(mc.Options) != 1 {
		t.Fatalf("expected single-option question, got %d options", len(mc.Options))
	}
	if mc.Options[0] != "Lipitor" {
		t.Errorf("unexpected option: %q", mc.Options[0])
	}
	if mc.Question != "What is the brand for atorvastatin?" {
		t.Errorf("unexpected question: %q", mc.Question)
	}
	if mc.LabeledOptions[0].Label != "A" {
		t.Errorf("unexpected label: %q", mc.LabeledOptions[0].Label)
	}
}
