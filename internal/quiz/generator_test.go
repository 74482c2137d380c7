package quiz

import (
	"math/rand"
	"testing"
)

func testGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	b, err := NewBank(testFacts())
	if err != nil {
		t.Fatalf("NewBank failed: %v", err)
	}
	return NewGenerator(b, rand.New(rand.NewSource(seed)))
}

func TestGenerate_OptionsWellFormed(t *testing.T) {
	g := testGenerator(t, 1)

	for _, mode := range []Tier{TierEasy, TierMedium, TierHard} {
		for index := 1; index <= 60; index++ {
			q := g.Generate(mode, index)

			if len(q.Options) != OptionCount {
				t.Fatalf("mode=%s index=%d: %d options, want %d", mode, index, len(q.Options), OptionCount)
			}
			seen := map[string]bool{}
			correctCount := 0
			for _, o := range q.Options {
				if seen[o] {
					t.Fatalf("mode=%s index=%d: duplicate option %q", mode, index, o)
				}
				seen[o] = true
				if o == q.Capital {
					correctCount++
				}
			}
			if correctCount != 1 {
				t.Fatalf("mode=%s index=%d: correct capital appears %d times", mode, index, correctCount)
			}
		}
	}
}

func TestGenerate_EligibilityRamp(t *testing.T) {
	cases := []struct {
		mode    Tier
		index   int
		allowed map[Tier]bool
	}{
		{TierEasy, 1, map[Tier]bool{TierEasy: true}},
		{TierEasy, 20, map[Tier]bool{TierEasy: true}},
		{TierEasy, 21, map[Tier]bool{TierEasy: true, TierMedium: true}},
		{TierEasy, 40, map[Tier]bool{TierEasy: true, TierMedium: true}},
		{TierEasy, 41, map[Tier]bool{TierEasy: true, TierMedium: true, TierHard: true}},
		{TierMedium, 1, map[Tier]bool{TierEasy: true, TierMedium: true}},
		{TierMedium, 30, map[Tier]bool{TierEasy: true, TierMedium: true}},
		{TierMedium, 31, map[Tier]bool{TierEasy: true, TierMedium: true, TierHard: true}},
		{TierHard, 1, map[Tier]bool{TierEasy: true, TierMedium: true, TierHard: true}},
	}

	g := testGenerator(t, 42)
	for _, c := range cases {
		// Sample repeatedly; the correct fact must always come from the
		// eligible subset.
		for i := 0; i < 50; i++ {
			q := g.Generate(c.mode, c.index)
			if !c.allowed[q.Tier] {
				t.Errorf("mode=%s index=%d: got %s-tier question", c.mode, c.index, q.Tier)
				break
			}
		}
	}
}

func TestGenerate_DistractorsComeFromWholeBank(t *testing.T) {
	// Easy mode, index 1: only easy facts are eligible as the correct answer,
	// but distractors may be any capital. With 4 easy facts and a hard
	// capital in the bank, the hard capital should eventually show up.
	g := testGenerator(t, 7)
	sawIneligible := false
	for i := 0; i < 200 && !sawIneligible; i++ {
		q := g.Generate(TierEasy, 1)
		for _, o := range q.Options {
			if o == "Naypyidaw" || o == "Astana" {
				sawIneligible = true
			}
		}
	}
	if !sawIneligible {
		t.Error("distractors never drawn from outside the eligible subset")
	}
}
