// Package audio plays short feedback tones through ebiten's audio pipeline.
// Everything here is best-effort: if the audio device is missing or playback
// fails the game simply stays silent.
package audio

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

const sampleRate = 44100

type kind int

const (
	kindClick kind = iota
	kindCorrect
	kindWrong
	kindTimeout
)

// tones are simple square waves; frequency and length per cue kind.
var tones = map[kind]struct {
	freq float64
	ms   int
}{
	kindClick:   {1320, 30},
	kindCorrect: {880, 120},
	kindWrong:   {220, 200},
	kindTimeout: {165, 300},
}

// Player is the shared audio output handle. The underlying audio.Context is
// process-wide and may only be created once, so the Player creates it lazily
// on the first cue and reuses it for all later ones.
type Player struct {
	mu      sync.Mutex
	ctx     *audio.Context
	players map[kind]*audio.Player
	log     *zap.Logger
}

func NewPlayer(log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{players: make(map[kind]*audio.Player), log: log}
}

func (p *Player) Click()   { p.play(kindClick) }
func (p *Player) Correct() { p.play(kindCorrect) }
func (p *Player) Wrong()   { p.play(kindWrong) }
func (p *Player) TimeUp()  { p.play(kindTimeout) }

func (p *Player) play(k kind) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			p.log.Debug("audio unavailable", zap.Any("cause", r))
		}
	}()

	if p.ctx == nil {
		p.ctx = audio.CurrentContext()
		if p.ctx == nil {
			p.ctx = audio.NewContext(sampleRate)
		}
	}

	pl, ok := p.players[k]
	if !ok {
		t := tones[k]
		pl = p.ctx.NewPlayerFromBytes(squareWave(t.freq, t.ms))
		p.players[k] = pl
	}

	if err := pl.Rewind(); err != nil {
		p.log.Debug("cue rewind failed", zap.Error(err))
		return
	}
	pl.Play()
}

// squareWave renders 16-bit LE stereo PCM at sampleRate, with a short linear
// fade-out to avoid a click at the end of the tone.
func squareWave(freq float64, ms int) []byte {
	samples := sampleRate * ms / 1000
	fade := samples / 8
	out := make([]byte, samples*4)

	period := float64(sampleRate) / freq
	for i := 0; i < samples; i++ {
		v := 0.25
		if math.Mod(float64(i), period) >= period/2 {
			v = -0.25
		}
		if left := samples - i; left < fade {
			v *= float64(left) / float64(fade)
		}
		s := int16(v * math.MaxInt16)
		out[i*4] = byte(s)
		out[i*4+1] = byte(s >> 8)
		out[i*4+2] = byte(s)
		out[i*4+3] = byte(s >> 8)
	}
	return out
}
