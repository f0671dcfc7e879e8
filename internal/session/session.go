// Package session holds the state of one Star Catcher process: the
// Menu/Playing/GameOver machine, score and high score, the sound flag and
// the audio-trigger queue. A Session drives exactly one game variant.
//
// A Session is not safe for concurrent use. The host calls Tick once per
// frame and delivers input between ticks.
package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

// State is the top-level game state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Menu button geometry in playfield pixels.
const (
	buttonWidth   = 260
	buttonHeight  = 50
	buttonSpacing = 60
	buttonOffsetY = -40 // Centre of the first button relative to the playfield centre
)

// Button is a clickable menu entry. Action is what a click on it does.
type Button struct {
	Action core.Action
	Label  string
	Box    core.Hitbox
}

// Snapshot is a read-only view of the session for renderers.
type Snapshot struct {
	Title        string
	State        State
	Score        int
	HighScore    int
	Lives        int
	HasLives     bool
	SoundEnabled bool
	Width        float64
	Height       float64
	Buttons      []Button      // Only in Menu
	Sprites      []core.Sprite // Empty in Menu
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the generator that picks a seed for every run.
// Zero means a time-based seed.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
	}
}

// WithSound sets the initial sound flag. Sound is on by default.
func WithSound(enabled bool) Option {
	return func(s *Session) {
		s.soundEnabled = enabled
	}
}

// WithPlayfield overrides the variant's configured playfield size.
func WithPlayfield(width, height float64) Option {
	return func(s *Session) {
		s.runtime.Width = width
		s.runtime.Height = height
	}
}

// Session is the single mutable game state of the process.
type Session struct {
	game    registry.Game
	runtime core.RuntimeConfig
	seed    int64
	rng     *rand.Rand
	logger  *log.Logger

	state        State
	score        int
	highScore    int
	soundEnabled bool
	pending      core.InputFrame
	events       []SoundEvent
	quit         bool
	ticks        int
}

// New creates a session in the Menu state for the given variant.
func New(game registry.Game, opts ...Option) *Session {
	s := &Session{
		game:         game,
		logger:       log.New(io.Discard),
		soundEnabled: true,
		pending:      core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))

	// The variant needs a reset before it can report its playfield.
	s.runtime.Seed = s.rng.Int63()
	s.game.Reset(s.runtime)
	return s
}

// Game returns the variant driven by this session.
func (s *Session) Game() registry.Game {
	return s.game
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current or last run.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score of any run that ended in a lethal hit.
func (s *Session) HighScore() int {
	return s.highScore
}

// SoundEnabled reports the sound flag.
func (s *Session) SoundEnabled() bool {
	return s.soundEnabled
}

// QuitRequested reports whether the player asked to exit.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Ticks returns the number of simulated ticks in the current run.
func (s *Session) Ticks() int {
	return s.ticks
}

// HandleAction applies a discrete input. The meaning of an action depends on
// the state: the primary action starts from the menu, flaps while playing and
// restarts after a game over; the menu action quits from the menu and goes
// back to it otherwise.
func (s *Session) HandleAction(a core.Action) {
	if a == core.ActionQuit {
		s.requestQuit()
		return
	}

	switch s.state {
	case StateMenu:
		switch a {
		case core.ActionFlap, core.ActionStart:
			s.start()
		case core.ActionMenu:
			s.requestQuit()
		case core.ActionToggleSound:
			s.toggleSound()
		}

	case StatePlaying:
		switch a {
		case core.ActionFlap, core.ActionLeft, core.ActionRight:
			s.pending.Set(a)
		case core.ActionMenu:
			s.toMenu()
		}

	case StateGameOver:
		switch a {
		case core.ActionFlap, core.ActionStart, core.ActionRestart:
			s.start()
		case core.ActionMenu:
			s.toMenu()
		}
	}
}

// Click handles a pointer press at p in playfield pixels. In the menu it
// activates the button under p; while playing any click flaps.
func (s *Session) Click(p core.Point) {
	switch s.state {
	case StateMenu:
		for _, b := range s.Buttons() {
			if b.Box.ContainsPoint(p) {
				s.HandleAction(b.Action)
				return
			}
		}
	case StatePlaying:
		s.pending.Set(core.ActionFlap)
	}
}

// Tick advances the session by one frame. Held intents in `in` are merged
// with the actions queued since the previous tick. Outside Playing nothing
// moves.
func (s *Session) Tick(in core.InputFrame) core.StepResult {
	if s.state != StatePlaying {
		s.pending.Clear()
		return core.StepResult{}
	}

	frame := s.pending.Clone()
	frame.Merge(in)
	s.pending.Clear()

	res := s.game.Step(frame)
	s.ticks++

	if res.Flapped && s.soundEnabled {
		s.emit(SoundFlap)
	}
	if res.Scored > 0 {
		s.score += res.Scored
	}
	if res.Lethal {
		s.gameOver()
	}
	return res
}

// Buttons returns the menu buttons laid out around the playfield centre.
// The sound button's label reflects the current flag.
func (s *Session) Buttons() []Button {
	w, h := s.game.Playfield()
	sound := "Sound: off"
	if s.soundEnabled {
		sound = "Sound: on"
	}

	entries := []struct {
		action core.Action
		label  string
	}{
		{core.ActionStart, "Start flight"},
		{core.ActionToggleSound, sound},
		{core.ActionQuit, "Exit"},
	}

	buttons := make([]Button, len(entries))
	for i, e := range entries {
		cy := h/2 + buttonOffsetY + float64(i*buttonSpacing)
		buttons[i] = Button{
			Action: e.action,
			Label:  e.label,
			Box:    core.HitboxFromCenter(w/2, cy, buttonWidth, buttonHeight),
		}
	}
	return buttons
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	w, h := s.game.Playfield()
	lives, hasLives := s.game.Lives()
	snap := Snapshot{
		Title:        s.game.Title(),
		State:        s.state,
		Score:        s.score,
		HighScore:    s.highScore,
		Lives:        lives,
		HasLives:     hasLives,
		SoundEnabled: s.soundEnabled,
		Width:        w,
		Height:       h,
	}
	if s.state == StateMenu {
		snap.Buttons = s.Buttons()
	} else {
		snap.Sprites = s.game.Sprites()
	}
	return snap
}

// start begins a fresh run from Menu or GameOver.
func (s *Session) start() {
	from := s.state
	s.runtime.Seed = s.rng.Int63()
	s.game.Reset(s.runtime)
	s.score = 0
	s.ticks = 0
	s.pending.Clear()
	s.state = StatePlaying
	if s.soundEnabled {
		s.emit(SoundMusicStart)
	}
	s.logger.Debug("run started", "game", s.game.ID(), "from", from, "seed", s.runtime.Seed)
}

// gameOver ends the run after a lethal hit. This is the only place the high
// score changes.
func (s *Session) gameOver() {
	s.state = StateGameOver
	s.emit(SoundMusicStop)
	if s.score > s.highScore {
		s.highScore = s.score
	}
	if s.soundEnabled {
		s.emit(SoundHit)
	}
	s.logger.Debug("game over", "game", s.game.ID(), "score", s.score, "best", s.highScore, "ticks", s.ticks)
}

func (s *Session) toMenu() {
	from := s.state
	s.state = StateMenu
	s.pending.Clear()
	s.emit(SoundMusicStop)
	s.logger.Debug("back to menu", "from", from, "score", s.score)
}

// toggleSound flips the sound flag. Music resumes only while playing.
func (s *Session) toggleSound() {
	s.soundEnabled = !s.soundEnabled
	if !s.soundEnabled {
		s.emit(SoundMusicStop)
	} else if s.state == StatePlaying {
		s.emit(SoundMusicStart)
	}
	s.logger.Debug("sound toggled", "enabled", s.soundEnabled)
}

func (s *Session) requestQuit() {
	s.quit = true
	s.logger.Debug("quit requested", "state", s.state)
}
