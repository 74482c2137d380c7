package quiz

import "math"

// BasePoints returns the raw value of a question by its own difficulty tag.
func BasePoints(tier Tier) int {
	switch tier {
	case TierMedium:
		return 20
	case TierHard:
		return 30
	default:
		return 10
	}
}

// ModeMultiplier rewards playing a harder game mode. It applies to every
// question in the run, including the easier ones a hard run still serves.
func ModeMultiplier(mode Tier) float64 {
	switch mode {
	case TierMedium:
		return 1.2
	case TierHard:
		return 1.5
	default:
		return 1.0
	}
}

// ComboMultiplier is a step function of the streak length, evaluated after
// the current correct answer has been counted.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo < 3:
		return 1.0
	case combo < 5:
		return 1.2
	case combo < 10:
		return 1.5
	case combo < 20:
		return 2.0
	default:
		return 2.5
	}
}

// Award computes the points for a correct answer. The question's own tier
// sets the base; the player-selected mode sets the mode multiplier. The two
// differ on purpose: a hard run serving an easy question still pays the mode
// bonus.
func Award(questionTier, mode Tier, combo int) int {
	return int(math.Floor(float64(BasePoints(questionTier)) * ModeMultiplier(mode) * ComboMultiplier(combo)))
}

// TimeLimit returns the per-question countdown in whole seconds for a mode.
func TimeLimit(mode Tier) int {
	switch mode {
	case TierMedium:
		return 4
	case TierHard:
		return 2
	default:
		return 7
	}
}
