package quiz

import "testing"

func TestComboMultiplier_Boundaries(t *testing.T) {
	cases := []struct {
		combo int
		want  float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.0},
		{3, 1.2},
		{4, 1.2},
		{5, 1.5},
		{9, 1.5},
		{10, 2.0},
		{19, 2.0},
		{20, 2.5},
		{100, 2.5},
	}
	for _, c := range cases {
		if got := ComboMultiplier(c.combo); got != c.want {
			t.Errorf("ComboMultiplier(%d) = %v, want %v", c.combo, got, c.want)
		}
	}
}

func TestComboMultiplier_Monotonic(t *testing.T) {
	prev := ComboMultiplier(0)
	for combo := 1; combo <= 50; combo++ {
		cur := ComboMultiplier(combo)
		if cur < prev {
			t.Fatalf("ComboMultiplier(%d) = %v < ComboMultiplier(%d) = %v", combo, cur, combo-1, prev)
		}
		prev = cur
	}
}

func TestAward(t *testing.T) {
	cases := []struct {
		name         string
		questionTier Tier
		mode         Tier
		combo        int
		want         int
	}{
		{"first easy answer", TierEasy, TierEasy, 1, 10},
		{"hard question hard mode streak 5", TierHard, TierHard, 5, 67}, // floor(30*1.5*1.5)
		{"easy question served in hard mode", TierEasy, TierHard, 1, 15},
		{"medium mode 4th straight correct", TierEasy, TierMedium, 4, 14}, // floor(10*1.2*1.2)
		{"medium question medium mode", TierMedium, TierMedium, 1, 24},
	}
	for _, c := range cases {
		if got := Award(c.questionTier, c.mode, c.combo); got != c.want {
			t.Errorf("%s: Award = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestBasePoints(t *testing.T) {
	if BasePoints(TierEasy) != 10 || BasePoints(TierMedium) != 20 || BasePoints(TierHard) != 30 {
		t.Error("base points do not match 10/20/30")
	}
}

func TestTimeLimit(t *testing.T) {
	if TimeLimit(TierEasy) != 7 || TimeLimit(TierMedium) != 4 || TimeLimit(TierHard) != 2 {
		t.Error("time limits do not match 7/4/2")
	}
}
