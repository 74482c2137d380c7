// Package ui renders the game with ebiten and maps input onto the round
// machine and the screen stack.
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"capital-rush/internal/audio"
	"capital-rush/internal/highscore"
	"capital-rush/internal/round"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 600

	// UI Colors
	colBgDark     = 0x0f172aff // #0f172a
	colAccent     = 0x38bdf8ff // #38bdf8
	colGlass      = 0x1e293bf2 // #1e293b (95% opacity)
	colGlassLight = 0x334155ff // #334155
	colText       = 0xf1f5f9ff // #f1f5f9
	colTextMuted  = 0x94a3b8ff // #94a3b8
	colSuccess    = 0x4ade80ff // #4ade80
	colDanger     = 0xf87171ff // #f87171
	colWarn       = 0xfbbf24ff // #fbbf24
)

// Screen is the top-level UI mode.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenDifficulty
	ScreenPlaying
	ScreenGameOver
	ScreenHelp
)

type Button struct {
	X, Y, W, H int
	Text       string
	Action     func()
	Color      color.Color
	TextColor  color.Color
}

// Game is the ebiten front end. It owns the screen stack and forwards input
// events to the round machine; all game state lives in the machine.
type Game struct {
	machine *round.Machine
	store   *highscore.Store
	cues    *audio.Player
	log     *zap.Logger

	stack      []Screen
	buttons    []Button
	shouldQuit bool

	best       int
	finalScore int
}

func New(machine *round.Machine, store *highscore.Store, cues *audio.Player, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		machine: machine,
		store:   store,
		cues:    cues,
		log:     log,
		stack:   []Screen{ScreenMain},
		best:    store.Best(),
	}

	machine.OnGameOver = func(final int) {
		g.finalScore = final
		g.best = g.store.Best()
		g.replace(ScreenGameOver)
		g.log.Info("game over", zap.Int("score", final), zap.Int("best", g.best))
	}

	return g
}

func (g *Game) current() Screen {
	return g.stack[len(g.stack)-1]
}

func (g *Game) push(s Screen) {
	g.stack = append(g.stack, s)
}

// pop returns to the previous screen; the root screen stays put.
func (g *Game) pop() {
	if len(g.stack) > 1 {
		g.stack = g.stack[:len(g.stack)-1]
	}
}

func (g *Game) replace(s Screen) {
	g.stack[len(g.stack)-1] = s
}

func (g *Game) toMenu() {
	g.machine.Stop()
	g.best = g.store.Best()
	g.stack = g.stack[:1]
}

func (g *Game) Update() error {
	if g.shouldQuit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.back()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.checkUIClick(x, y)
	}

	if g.current() == ScreenPlaying {
		g.handleAnswerKeys()
		g.machine.Tick(time.Now())
	}

	return nil
}

// back handles Escape / back navigation: leaving a running game cancels it.
func (g *Game) back() {
	switch g.current() {
	case ScreenPlaying, ScreenGameOver:
		g.toMenu()
	default:
		g.pop()
	}
}

// checkUIClick dispatches a click to the topmost button hit, using the
// buttons registered during the previous draw pass.
func (g *Game) checkUIClick(x, y int) {
	for i := len(g.buttons) - 1; i >= 0; i-- {
		b := g.buttons[i]
		if x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H {
			if g.cues != nil {
				g.cues.Click()
			}
			if b.Action != nil {
				b.Action()
			}
			return
		}
	}
}

// handleAnswerKeys maps the 1-4 keys to the on-screen options.
func (g *Game) handleAnswerKeys() {
	if g.machine.Phase() != round.Armed {
		return
	}
	keys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}
	opts := g.machine.Question().Options
	for i, k := range keys {
		if i < len(opts) && inpututil.IsKeyJustPressed(k) {
			g.machine.Submit(opts[i], time.Now())
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(hexToColor(colBgDark))
	g.buttons = g.buttons[:0] // Reset buttons from previous frame

	switch g.current() {
	case ScreenMain:
		g.drawMain(screen)
	case ScreenDifficulty:
		g.drawDifficulty(screen)
	case ScreenPlaying:
		g.drawPlaying(screen)
	case ScreenGameOver:
		g.drawGameOver(screen)
	case ScreenHelp:
		g.drawHelp(screen)
	}

	for _, b := range g.buttons {
		ebitenutil.DrawRect(screen, float64(b.X), float64(b.Y), float64(b.W), float64(b.H), b.Color)
		tW := len(b.Text) * 7
		text.Draw(screen, b.Text, basicfont.Face7x13, b.X+(b.W-tW)/2, b.Y+b.H/2+4, b.TextColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func (g *Game) addButton(x, y, w, h int, label string, action func(), col color.Color, txtCol ...color.Color) {
	textColor := color.Color(color.White)
	if len(txtCol) > 0 {
		textColor = txtCol[0]
	}
	g.buttons = append(g.buttons, Button{X: x, Y: y, W: w, H: h, Text: label, Action: action, Color: col, TextColor: textColor})
}

func (g *Game) drawPanel(screen *ebiten.Image, x, y, w, h int, title string) {
	ebitenutil.DrawRect(screen, float64(x), float64(y), float64(w), float64(h), hexToColor(colGlass))
	text.Draw(screen, title, basicfont.Face7x13, x+20, y+30, hexToColor(colAccent))
}

func hexToColor(hex uint32) color.Color {
	return color.RGBA{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}
