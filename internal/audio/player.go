// Package audio plays the session's sound events through the system speaker.
// All sounds are synthesised; there are no asset files.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/star-catcher/internal/session"
)

const sampleRate = beep.SampleRate(44100)

// Player turns sound events into audio. A Player without a device accepts
// every event and plays nothing.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	music   *beep.Ctrl
	effects map[session.SoundEvent]func() beep.Streamer
	device  bool
	logger  *log.Logger
}

// New opens the speaker and prepares every sound. If the device cannot be
// opened the error is logged and a silent player is returned.
func New(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	p, err := newPlayer(logger)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return NewSilent(logger)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", "error", fmt.Errorf("audio: speaker init: %w", err))
		return NewSilent(logger)
	}
	p.device = true
	speaker.Play(p.mixer)
	logger.Debug("audio ready", "sample_rate", int(sampleRate))
	return p
}

// NewSilent returns a player that never touches an audio device.
func NewSilent(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:   &beep.Mixer{},
		effects: map[session.SoundEvent]func() beep.Streamer{},
		logger:  logger,
	}
}

// newPlayer builds the event table without opening a device.
func newPlayer(logger *log.Logger) (*Player, error) {
	flap, err := toneFactory(generators.SineTone, 660, 80*time.Millisecond, 0.4)
	if err != nil {
		return nil, fmt.Errorf("audio: flap sound: %w", err)
	}
	hit, err := toneFactory(generators.SquareTone, 110, 250*time.Millisecond, 0.3)
	if err != nil {
		return nil, fmt.Errorf("audio: hit sound: %w", err)
	}

	return &Player{
		mixer: &beep.Mixer{},
		effects: map[session.SoundEvent]func() beep.Streamer{
			session.SoundFlap: flap,
			session.SoundHit:  hit,
		},
		logger: logger,
	}, nil
}

// Handle plays one event. Music start is ignored while music is playing.
func (p *Player) Handle(e session.SoundEvent) {
	p.lock()
	defer p.unlock()

	switch e {
	case session.SoundMusicStart:
		if p.music != nil {
			return
		}
		p.music = &beep.Ctrl{Streamer: beep.Iterate(melody)}
		p.mixer.Add(p.music)
	case session.SoundMusicStop:
		if p.music == nil {
			return
		}
		// A Ctrl without a streamer is drained and dropped by the mixer.
		p.music.Streamer = nil
		p.music = nil
	default:
		if newSound, ok := p.effects[e]; ok {
			p.mixer.Add(newSound())
		}
	}
}

// HandleAll plays events in order.
func (p *Player) HandleAll(events []session.SoundEvent) {
	for _, e := range events {
		p.Handle(e)
	}
}

// MusicPlaying reports whether background music is on.
func (p *Player) MusicPlaying() bool {
	p.lock()
	defer p.unlock()
	return p.music != nil
}

// Active returns the number of streams currently mixed.
func (p *Player) Active() int {
	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close stops all sound and releases the device.
func (p *Player) Close() {
	p.lock()
	p.music = nil
	p.mixer.Clear()
	p.unlock()

	if p.device {
		speaker.Close()
		p.device = false
	}
}

func (p *Player) lock() {
	if p.device {
		speaker.Lock()
		return
	}
	p.mu.Lock()
}

func (p *Player) unlock() {
	if p.device {
		speaker.Unlock()
		return
	}
	p.mu.Unlock()
}

type toneFunc func(sr beep.SampleRate, freq float64) (beep.Streamer, error)

// toneFactory validates a tone once and returns a constructor for fresh,
// finite, volume-scaled copies of it.
func toneFactory(tone toneFunc, freq float64, d time.Duration, vol float64) (func() beep.Streamer, error) {
	if _, err := tone(sampleRate, freq); err != nil {
		return nil, err
	}
	return func() beep.Streamer {
		s, _ := tone(sampleRate, freq)
		return volume(beep.Take(sampleRate.N(d), s), vol)
	}, nil
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// melodyNotes is one bar of the background loop, in Hz.
var melodyNotes = []float64{392, 523.25, 659.25, 523.25, 440, 587.33, 698.46, 587.33}

// melody returns one pass of the background loop.
func melody() beep.Streamer {
	notes := make([]beep.Streamer, 0, len(melodyNotes)*2)
	for _, f := range melodyNotes {
		s, err := generators.SineTone(sampleRate, f)
		if err != nil {
			continue
		}
		notes = append(notes,
			volume(beep.Take(sampleRate.N(220*time.Millisecond), s), 0.15),
			generators.Silence(sampleRate.N(30*time.Millisecond)),
		)
	}
	return beep.Seq(notes...)
}
