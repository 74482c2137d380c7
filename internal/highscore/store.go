// Package highscore persists the personal best score as a small JSON file in
// the user's home directory. Storage trouble is never fatal: a missing or
// corrupt file reads as zero and failed writes are logged and dropped, so the
// game keeps running without persistence.
package highscore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

const bestFile = "best.json"

type record struct {
	Best int `json:"best"`
}

// Store handles the single persisted integer. Safe for concurrent use; the
// compare-and-store in Put happens under one lock.
type Store struct {
	mu  sync.Mutex
	dir string
	log *zap.Logger
}

// NewStore creates a store rooted at dir. An empty dir selects
// ~/.capital-rush; if the home directory is unavailable the current
// directory is used.
func NewStore(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			dir = ".capital-rush"
		} else {
			dir = filepath.Join(home, ".capital-rush")
		}
	}
	return &Store{dir: dir, log: log}
}

// Best returns the stored high score, or 0 when nothing valid is stored.
func (s *Store) Best() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Put stores score as the new best only when it strictly beats the current
// one. An equal score leaves the file untouched.
func (s *Store) Put(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= s.read() {
		return
	}

	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			s.log.Warn("high score dir unavailable", zap.Error(err))
			return
		}
	}

	data, err := json.MarshalIndent(record{Best: score}, "", "  ")
	if err != nil {
		s.log.Warn("high score encode failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(filepath.Join(s.dir, bestFile), data, 0644); err != nil {
		s.log.Warn("high score write failed", zap.Error(err))
	}
}

func (s *Store) read() int {
	data, err := os.ReadFile(filepath.Join(s.dir, bestFile))
	if err != nil {
		return 0
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil || r.Best < 0 {
		s.log.Warn("high score file corrupt, treating as 0", zap.Error(err))
		return 0
	}
	return r.Best
}
