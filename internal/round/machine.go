// Package round drives the lifecycle of one quiz run: arm a question, resolve
// it by answer or timeout, show feedback, advance or end the game.
//
// The machine is poll-driven. The render loop calls Tick with the current
// time each frame; all mutating calls take an explicit now so tests can feed
// a synthetic clock. Nothing here spawns goroutines or timers: "waiting" is a
// deadline the next Tick compares against.
package round

import (
	"time"

	"capital-rush/internal/quiz"
)

// Phase is the machine's lifecycle state. Only Armed accepts resolving
// transitions, which makes the phase check itself the one-shot latch against
// the timeout-vs-answer race.
type Phase int

const (
	Idle Phase = iota
	Armed
	Resolved
	Over
)

// Feedback is the player-visible outcome of a resolved round.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
	FeedbackTimeout
)

// QuestionSource generates the question for a mode and 1-based index.
type QuestionSource interface {
	Generate(mode quiz.Tier, index int) quiz.Question
}

// ScoreStore persists the personal best. Put must be a no-op unless the
// score strictly beats the stored one, and must never fail loudly.
type ScoreStore interface {
	Best() int
	Put(score int)
}

// Cues plays feedback sounds. All methods are best-effort.
type Cues interface {
	Correct()
	Wrong()
	TimeUp()
}

// Config holds the product timing knobs.
type Config struct {
	Lives         int
	FeedbackDelay time.Duration
}

// FastFeedbackDelay is the impatient-player preset for the post-resolution
// pause.
const FastFeedbackDelay = 500 * time.Millisecond

func DefaultConfig() Config {
	return Config{
		Lives:         3,
		FeedbackDelay: 1800 * time.Millisecond,
	}
}

// Machine owns all round state. No other component mutates score, lives or
// combo.
type Machine struct {
	cfg    Config
	source QuestionSource
	store  ScoreStore
	cues   Cues

	mode     quiz.Tier
	phase    Phase
	question quiz.Question

	score    int
	lives    int
	combo    int
	index    int
	timeLeft int

	feedback  Feedback
	selected  string
	revealed  string
	lastAward int

	nextSecond time.Time
	advanceAt  time.Time

	// Screen-flow hooks, all optional.
	OnArmed    func(q quiz.Question, timeRemaining int)
	OnAdvance  func()
	OnGameOver func(finalScore int)
}

// New wires a machine. store and cues may be nil (no persistence, no sound).
func New(source QuestionSource, store ScoreStore, cues Cues, cfg Config) *Machine {
	if cfg.Lives <= 0 {
		cfg.Lives = DefaultConfig().Lives
	}
	if cfg.FeedbackDelay <= 0 {
		cfg.FeedbackDelay = DefaultConfig().FeedbackDelay
	}
	return &Machine{cfg: cfg, source: source, store: store, cues: cues}
}

// Start begins a fresh run in the given mode and arms question 1.
func (m *Machine) Start(mode quiz.Tier, now time.Time) {
	m.mode = mode
	m.score = 0
	m.lives = m.cfg.Lives
	m.combo = 0
	m.index = 1
	m.arm(now)
}

// Restart resets the current run in the same mode.
func (m *Machine) Restart(now time.Time) {
	m.Start(m.mode, now)
}

// Stop abandons the run, cancelling the countdown and any pending advance.
// Used when the player navigates back to a menu mid-game.
func (m *Machine) Stop() {
	m.phase = Idle
}

func (m *Machine) arm(now time.Time) {
	m.question = m.source.Generate(m.mode, m.index)
	m.timeLeft = quiz.TimeLimit(m.mode)
	m.nextSecond = now.Add(time.Second)
	m.feedback = FeedbackNone
	m.selected = ""
	m.revealed = ""
	m.lastAward = 0
	m.phase = Armed
	if m.OnArmed != nil {
		m.OnArmed(m.question, m.timeLeft)
	}
}

// Submit resolves the armed round with the player's chosen option. Returns
// false when the round is not armed; a click landing after a timeout (or a
// second click) changes nothing.
func (m *Machine) Submit(option string, now time.Time) bool {
	if m.phase != Armed {
		return false
	}

	m.selected = option
	if option == m.question.Capital {
		m.combo++
		m.lastAward = quiz.Award(m.question.Tier, m.mode, m.combo)
		m.score += m.lastAward
		m.feedback = FeedbackCorrect
		if m.cues != nil {
			m.cues.Correct()
		}
	} else {
		m.combo = 0
		m.lives--
		m.revealed = m.question.Capital
		m.feedback = FeedbackWrong
		if m.cues != nil {
			m.cues.Wrong()
		}
	}

	m.phase = Resolved
	m.advanceAt = now.Add(m.cfg.FeedbackDelay)
	return true
}

// Tick advances the countdown and fires deferred transitions. Safe to call
// at any frequency; whole elapsed seconds are consumed in order, so a laggy
// frame cannot skip the timeout.
func (m *Machine) Tick(now time.Time) {
	switch m.phase {
	case Armed:
		for m.phase == Armed && !now.Before(m.nextSecond) {
			m.timeLeft--
			m.nextSecond = m.nextSecond.Add(time.Second)
			if m.timeLeft <= 0 {
				m.timeout(now)
			}
		}
	case Resolved:
		if !now.Before(m.advanceAt) {
			if m.lives <= 0 {
				m.gameOver()
			} else {
				m.index++
				m.arm(now)
				if m.OnAdvance != nil {
					m.OnAdvance()
				}
			}
		}
	}
}

// timeout is reached only from Armed, so it can never double-fire.
func (m *Machine) timeout(now time.Time) {
	m.timeLeft = 0
	m.combo = 0
	m.lives--
	m.revealed = m.question.Capital
	m.feedback = FeedbackTimeout
	if m.cues != nil {
		m.cues.TimeUp()
	}
	m.phase = Resolved
	m.advanceAt = now.Add(m.cfg.FeedbackDelay)
}

func (m *Machine) gameOver() {
	m.phase = Over
	if m.store != nil {
		m.store.Put(m.score)
	}
	if m.OnGameOver != nil {
		m.OnGameOver(m.score)
	}
}

func (m *Machine) Phase() Phase            { return m.phase }
func (m *Machine) Mode() quiz.Tier         { return m.mode }
func (m *Machine) Question() quiz.Question { return m.question }
func (m *Machine) Score() int              { return m.score }
func (m *Machine) Lives() int              { return m.lives }
func (m *Machine) Combo() int              { return m.combo }
func (m *Machine) QuestionIndex() int      { return m.index }
func (m *Machine) TimeRemaining() int      { return m.timeLeft }
func (m *Machine) Feedback() Feedback      { return m.feedback }
func (m *Machine) Selected() string        { return m.selected }
func (m *Machine) CorrectAnswer() string   { return m.revealed }
func (m *Machine) LastAward() int          { return m.lastAward }
