package quiz

import (
	"math/rand"
	"time"
)

// OptionCount is the number of choices shown per question.
const OptionCount = 4

// Question is one round's worth of quiz material. Options always contains
// the capital exactly once among OptionCount distinct entries.
type Question struct {
	Country string
	Capital string
	Options []string
	Tier    Tier
}

// Generator produces questions from a validated bank. Questions get harder as
// the run progresses: the eligible tier set widens with the question index.
type Generator struct {
	bank *Bank
	rng  *rand.Rand
}

// NewGenerator creates a generator. Pass a seeded rng for deterministic
// output; nil falls back to a time-seeded one.
func NewGenerator(bank *Bank, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{bank: bank, rng: rng}
}

// eligibleTiers implements the difficulty ramp. Easy mode stays easy for 20
// questions, mixes in medium until 40, then everything; medium mode starts
// with easy+medium and adds hard at 31; hard mode serves everything from the
// start.
func eligibleTiers(mode Tier, index int) map[Tier]bool {
	switch mode {
	case TierMedium:
		if index <= 30 {
			return map[Tier]bool{TierEasy: true, TierMedium: true}
		}
	case TierHard:
	default: // easy
		if index <= 20 {
			return map[Tier]bool{TierEasy: true}
		}
		if index <= 40 {
			return map[Tier]bool{TierEasy: true, TierMedium: true}
		}
	}
	return map[Tier]bool{TierEasy: true, TierMedium: true, TierHard: true}
}

// Generate builds the question for the given mode and 1-based index. The
// correct fact is sampled uniformly from the eligible subset; distractors
// come from the whole bank so even an easy run sees varied wrong answers.
func (g *Generator) Generate(mode Tier, index int) Question {
	eligible := eligibleTiers(mode, index)

	pool := make([]Fact, 0, g.bank.Len())
	for _, f := range g.bank.Facts() {
		if eligible[f.Tier] {
			pool = append(pool, f)
		}
	}
	// Easy facts are always eligible and the bank guarantees at least one,
	// so the pool is never empty.
	correct := pool[g.rng.Intn(len(pool))]

	options := append(g.distractors(correct.Capital), correct.Capital)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Question{
		Country: correct.Country,
		Capital: correct.Capital,
		Options: options,
		Tier:    correct.Tier,
	}
}

// distractors picks 3 distinct capitals different from the correct one.
func (g *Generator) distractors(correct string) []string {
	seen := map[string]bool{correct: true}
	candidates := make([]string, 0, g.bank.Len())
	for _, f := range g.bank.Facts() {
		if seen[f.Capital] {
			continue
		}
		seen[f.Capital] = true
		candidates = append(candidates, f.Capital)
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates[:OptionCount-1]
}
