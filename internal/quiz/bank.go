package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Tier is a difficulty level. It is attached independently to each fact and
// to the player-selected game mode.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

var ErrBankTooSmall = errors.New("question bank too small")

// Fact is a single country/capital record. Facts with no difficulty field
// count as easy.
type Fact struct {
	Country string `json:"country"`
	Capital string `json:"capital"`
	Tier    Tier   `json:"difficulty,omitempty"`
}

// Bank holds the fixed set of facts for the process lifetime. Validated once
// at load; Generate never has to re-check it.
type Bank struct {
	facts []Fact
}

// LoadBank reads a JSON array of facts from path.
func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}

	var facts []Fact
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}

	return NewBank(facts)
}

// NewBank validates the fact set. A bank is usable when it is non-empty, has
// at least one easy fact (the narrowest eligible subset) and at least 4
// distinct capitals, so option generation can never come up short.
func NewBank(facts []Fact) (*Bank, error) {
	if len(facts) == 0 {
		return nil, fmt.Errorf("%w: no facts", ErrBankTooSmall)
	}

	capitals := make(map[string]struct{}, len(facts))
	hasEasy := false
	out := make([]Fact, 0, len(facts))
	for i, f := range facts {
		if f.Country == "" || f.Capital == "" {
			return nil, fmt.Errorf("fact %d: missing country or capital", i)
		}
		switch f.Tier {
		case TierEasy, TierMedium, TierHard:
		case "":
			f.Tier = TierEasy
		default:
			return nil, fmt.Errorf("fact %d (%s): unknown difficulty %q", i, f.Country, f.Tier)
		}
		if f.Tier == TierEasy {
			hasEasy = true
		}
		capitals[f.Capital] = struct{}{}
		out = append(out, f)
	}

	if !hasEasy {
		return nil, fmt.Errorf("%w: no easy facts", ErrBankTooSmall)
	}
	if len(capitals) < 4 {
		return nil, fmt.Errorf("%w: %d distinct capitals, need at least 4", ErrBankTooSmall, len(capitals))
	}

	return &Bank{facts: out}, nil
}

// Facts returns the full fact set. Callers must treat it as read-only.
func (b *Bank) Facts() []Fact {
	return b.facts
}

func (b *Bank) Len() int {
	return len(b.facts)
}
