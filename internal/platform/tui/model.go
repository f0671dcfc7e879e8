package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/session"
)

// DefaultHoldTicks is how many ticks a left/right press counts as held.
// Terminals report key repeats but no key releases.
const DefaultHoldTicks = 8

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

// SoundSink consumes the session's audio triggers.
type SoundSink interface {
	HandleAll(events []session.SoundEvent)
}

// Options configures the terminal front end.
type Options struct {
	FPS       int
	HoldTicks int
	Width     int // Initial terminal size, replaced by the first resize
	Height    int
	Sounds    SoundSink
	Logger    *log.Logger
}

// Model is the Bubble Tea model running one session.
type Model struct {
	sess      *session.Session
	sounds    SoundSink
	logger    *log.Logger
	screen    *core.Screen
	view      viewport
	keys      KeyMap
	help      help.Model
	fps       int
	holdTicks int
	leftHold  int
	rightHold int
	width     int
	height    int
	quitting  bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(sess *session.Session, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		sess:      sess,
		sounds:    opts.Sounds,
		logger:    opts.Logger,
		screen:    core.NewScreen(opts.Width, opts.Height-helpHeight),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		fps:       opts.FPS,
		holdTicks: opts.HoldTicks,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickMsg:
		m = m.handleTick()
		cmd = tickCmd(m.fps)
	}

	m.flushSounds()

	if m.sess.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// handleKey maps a key to a session action. Left and right start a hold
// window instead of a one-tick action.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionNone:
	case core.ActionLeft:
		m.leftHold, m.rightHold = m.holdTicks, 0
	case core.ActionRight:
		m.rightHold, m.leftHold = m.holdTicks, 0
	default:
		m.sess.HandleAction(a)
	}
	return m
}

// handleMouse forwards left-button presses in playfield pixels.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	m.sess.Click(m.view.pixel(msg.X, msg.Y))
	return m
}

// handleTick runs one simulation tick with the held directions.
func (m Model) handleTick() Model {
	in := core.NewInputFrame()
	if m.leftHold > 0 {
		in.Set(core.ActionLeft)
		m.leftHold--
	}
	if m.rightHold > 0 {
		in.Set(core.ActionRight)
		m.rightHold--
	}

	m.sess.Tick(in)

	if m.sess.State() != session.StatePlaying {
		m.leftHold, m.rightHold = 0, 0
	}
	return m
}

func (m Model) flushSounds() {
	events := m.sess.DrainEvents()
	if len(events) == 0 {
		return
	}
	if m.sounds != nil {
		m.sounds.HandleAll(events)
	}
	m.logger.Debug("sound events", "events", events)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	rows := core.Max(1, height-helpHeight)
	m.screen.Resize(width, rows)
	w, h := m.sess.Game().Playfield()
	// Leave one row under the playfield for the floor line.
	m.view = newViewport(w, h, width, core.Max(1, rows-1))
	m.help.Width = width
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawSnapshot(m.screen, m.view, m.sess.Snapshot())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for the session and blocks until it exits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(
		NewModel(sess, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
