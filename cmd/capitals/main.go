package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"capital-rush/internal/audio"
	"capital-rush/internal/config"
	"capital-rush/internal/highscore"
	"capital-rush/internal/logger"
	"capital-rush/internal/quiz"
	"capital-rush/internal/round"
	"capital-rush/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	// A broken or missing bank is a configuration error; refuse to start.
	bank, err := quiz.LoadBank(cfg.BankPath)
	if err != nil {
		zl.Fatal("question bank unusable", zap.String("path", cfg.BankPath), zap.Error(err))
	}
	zl.Info("question bank loaded", zap.Int("facts", bank.Len()))

	store := highscore.NewStore(cfg.DataDir, zl)

	var cues *audio.Player
	var roundCues round.Cues
	if !cfg.Mute {
		cues = audio.NewPlayer(zl)
		roundCues = cues
	}

	machine := round.New(
		quiz.NewGenerator(bank, nil),
		store,
		roundCues,
		round.Config{Lives: 3, FeedbackDelay: cfg.FeedbackDelay()},
	)

	game := ui.New(machine, store, cues, zl)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Capital Rush")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil {
		zl.Fatal("game loop exited", zap.Error(err))
	}
}
