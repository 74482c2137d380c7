package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"capital-rush/internal/quiz"
	"capital-rush/internal/round"
)

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, col color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, (ScreenWidth-len(s)*7)/2, y, col)
}

func (g *Game) drawMain(screen *ebiten.Image) {
	g.drawCentered(screen, "C A P I T A L   R U S H", 140, hexToColor(colAccent))
	g.drawCentered(screen, "guess the capital before the clock runs out", 170, hexToColor(colTextMuted))

	if g.best > 0 {
		g.drawCentered(screen, fmt.Sprintf("BEST: %d", g.best), 220, hexToColor(colWarn))
	}

	g.addButton(ScreenWidth/2-100, 280, 200, 40, "PLAY", func() { g.push(ScreenDifficulty) }, hexToColor(colAccent), color.Black)
	g.addButton(ScreenWidth/2-100, 340, 200, 40, "HELP", func() { g.push(ScreenHelp) }, hexToColor(colGlassLight))
	g.addButton(ScreenWidth/2-100, 400, 200, 40, "QUIT", func() { g.shouldQuit = true }, hexToColor(colDanger))
}

func (g *Game) drawDifficulty(screen *ebiten.Image) {
	g.drawCentered(screen, "SELECT DIFFICULTY", 140, hexToColor(colAccent))

	modes := []struct {
		label string
		tier  quiz.Tier
	}{
		{"EASY", quiz.TierEasy},
		{"MEDIUM", quiz.TierMedium},
		{"HARD", quiz.TierHard},
	}

	y := 220
	for _, m := range modes {
		tier := m.tier
		g.addButton(ScreenWidth/2-100, y, 200, 40, m.label, func() {
			g.machine.Start(tier, time.Now())
			g.replace(ScreenPlaying)
		}, hexToColor(colGlassLight))
		hint := fmt.Sprintf("%ds per question, x%.1f points", quiz.TimeLimit(tier), quiz.ModeMultiplier(tier))
		text.Draw(screen, hint, basicfont.Face7x13, ScreenWidth/2+120, y+25, hexToColor(colTextMuted))
		y += 60
	}

	g.addButton(ScreenWidth/2-100, y+20, 200, 40, "BACK", func() { g.pop() }, hexToColor(colGlass))
}

func (g *Game) drawPlaying(screen *ebiten.Image) {
	m := g.machine

	// Status bar
	text.Draw(screen, fmt.Sprintf("SCORE: %d", m.Score()), basicfont.Face7x13, 30, 30, hexToColor(colAccent))
	text.Draw(screen, fmt.Sprintf("LIVES: %d", m.Lives()), basicfont.Face7x13, 200, 30, hexToColor(colDanger))
	if m.Combo() >= 2 {
		combo := fmt.Sprintf("COMBO x%d (%.1f)", m.Combo(), quiz.ComboMultiplier(m.Combo()))
		text.Draw(screen, combo, basicfont.Face7x13, 330, 30, hexToColor(colWarn))
	}

	timerCol := hexToColor(colText)
	if m.TimeRemaining() <= 2 {
		timerCol = hexToColor(colDanger)
	}
	text.Draw(screen, fmt.Sprintf("TIME: %d", m.TimeRemaining()), basicfont.Face7x13, ScreenWidth-120, 30, timerCol)

	g.drawPanel(screen, ScreenWidth/2-260, 80, 520, 420, fmt.Sprintf("QUESTION %d", m.QuestionIndex()))

	q := m.Question()
	g.drawCentered(screen, fmt.Sprintf("What is the capital of %s?", q.Country), 160, hexToColor(colText))

	// Options, with result colors once resolved
	y := 200
	for i, opt := range q.Options {
		col := hexToColor(colGlassLight)
		if m.Phase() == round.Resolved {
			if opt == q.Capital {
				col = hexToColor(colSuccess)
			} else if m.Feedback() == round.FeedbackWrong && opt == m.Selected() {
				col = hexToColor(colDanger)
			}
		}

		btnOpt := opt
		label := fmt.Sprintf("%d. %s", i+1, opt)
		g.addButton(ScreenWidth/2-220, y, 440, 44, label, func() {
			m.Submit(btnOpt, time.Now())
		}, col)
		y += 56
	}

	switch m.Feedback() {
	case round.FeedbackCorrect:
		g.drawCentered(screen, fmt.Sprintf("CORRECT! +%d", m.LastAward()), y+20, hexToColor(colSuccess))
	case round.FeedbackWrong:
		g.drawCentered(screen, fmt.Sprintf("WRONG! Capital: %s", m.CorrectAnswer()), y+20, hexToColor(colDanger))
	case round.FeedbackTimeout:
		g.drawCentered(screen, fmt.Sprintf("TIME'S UP! Capital: %s", m.CorrectAnswer()), y+20, hexToColor(colDanger))
	}

	g.addButton(30, ScreenHeight-60, 100, 30, "MENU", func() { g.toMenu() }, hexToColor(colGlass))
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	g.drawPanel(screen, ScreenWidth/2-180, 140, 360, 280, "GAME OVER")

	g.drawCentered(screen, fmt.Sprintf("Final Score: %d", g.finalScore), 220, hexToColor(colText))
	if g.finalScore > 0 && g.finalScore == g.best {
		g.drawCentered(screen, "NEW BEST!", 250, hexToColor(colWarn))
	} else {
		g.drawCentered(screen, fmt.Sprintf("Best: %d", g.best), 250, hexToColor(colTextMuted))
	}

	g.addButton(ScreenWidth/2-140, 300, 130, 40, "PLAY AGAIN", func() {
		g.machine.Restart(time.Now())
		g.replace(ScreenPlaying)
	}, hexToColor(colAccent), color.Black)
	g.addButton(ScreenWidth/2+10, 300, 130, 40, "MENU", func() { g.toMenu() }, hexToColor(colGlassLight))
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	g.drawPanel(screen, ScreenWidth/2-280, 80, 560, 400, "HOW TO PLAY")

	lines := []string{
		"Pick the capital of the shown country before the timer ends.",
		"",
		"Easy mode: 7s per question    Medium: 4s    Hard: 2s",
		"",
		"You have 3 lives. A wrong answer or a timeout costs one life",
		"and resets your combo.",
		"",
		"Points: easy questions 10, medium 20, hard 30, multiplied by",
		"the mode bonus (x1.0 / x1.2 / x1.5) and your combo streak:",
		"",
		"  3+ in a row  x1.2",
		"  5+ in a row  x1.5",
		" 10+ in a row  x2.0",
		" 20+ in a row  x2.5",
		"",
		"Harder modes mix in harder questions as your run goes on.",
		"Answer with the mouse or keys 1-4. Escape goes back.",
	}
	y := 130
	for _, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, ScreenWidth/2-250, y, hexToColor(colText))
		y += 18
	}

	g.addButton(ScreenWidth/2-100, ScreenHeight-80, 200, 40, "BACK", func() { g.pop() }, hexToColor(colGlassLight))
}
