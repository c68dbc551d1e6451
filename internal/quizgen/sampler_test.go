package quizgen

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestSampleDistractors_ExcludesCorrect(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}

	for seed := uint64(0); seed < 50; seed++ {
		got := SampleDistractors(testRand(seed), pool, "c", 3)
		if len(got) != 3 {
			t.Fatalf("seed %d: expected 3 distractors, got %d", seed, len(got))
		}
		for _, v := range got {
			if v == "c" {
				t.Fatalf("seed %d: correct answer sampled as distractor", seed)
			}
		}
	}
}

func TestSampleDistractors_NoDuplicates(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g"}

	for seed := uint64(0); seed < 50; seed++ {
		got := SampleDistractors(testRand(seed), pool, "a", 4)
		seen := make(map[string]bool, len(got))
		for _, v := range got {
			if seen[v] {
				t.Fatalf("seed %d: duplicate distractor %q", seed, v)
			}
			seen[v] = true
		}
	}
}

func TestSampleDistractors_PoolTooSmall(t *testing.T) {
	pool := []string{"a", "b", "c"}

	got := SampleDistractors(testRand(1), pool, "b", 10)
	if len(got) != 2 {
		t.Fatalf("expected all 2 available distractors, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, v := range got {
		seen[v] = true
	}
	if !seen["a"] || !seen["c"] {
		t.Errorf("expected {a, c}, got %v", got)
	}
}

func TestSampleDistractors_EmptyPool(t *testing.T) {
	got := SampleDistractors(testRand(1), []string{"only"}, "only", 3)
	if len(got) != 0 {
		t.Fatalf("expected no distractors, got %v", got)
	}
}

func TestSampleDistractors_NonPositiveCount(t *testing.T) {
	pool := []string{"a", "b", "c"}

	if got := SampleDistractors(testRand(1), pool, "a", 0); len(got) != 0 {
		t.Errorf("count 0: expected empty, got %v", got)
	}
	if got := SampleDistractors(testRand(1), pool, "a", -2); len(got) != 0 {
		t.Errorf("negative count: expected empty, got %v", got)
	}
}

func TestSampleDistractors_Deterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}

	first := SampleDistractors(testRand(42), pool, "d", 3)
	second := SampleDistractors(testRand(42), pool, "d", 3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different samples: %v vs %v", first, second)
	}
}

func TestSampleDistractors_DoesNotMutatePool(t *testing.T) {
	pool := []string{"a", "b", "c", "d"}
	want := []string{"a", "b", "c", "d"}

	SampleDistractors(testRand(7), pool, "b", 2)
	if !reflect.DeepEqual(pool, want) {
		t.Errorf("pool mutated: %v", pool)
	}
}
