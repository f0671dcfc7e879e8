package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/games/catcher"
	"github.com/vovakirdan/star-catcher/internal/games/flappy"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/session"
)

type recordingSink struct {
	events []session.SoundEvent
}

func (r *recordingSink) HandleAll(events []session.SoundEvent) {
	r.events = append(r.events, events...)
}

func newTestModel(game registry.Game) (Model, *recordingSink) {
	sink := &recordingSink{}
	sess := session.New(game, session.WithSeed(1))
	return NewModel(sess, Options{Width: 80, Height: 24, Sounds: sink}), sink
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsOnSpace(t *testing.T) {
	m, sink := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	if m.sess.State() != session.StatePlaying {
		t.Errorf("State() = %v, expected Playing", m.sess.State())
	}
	if len(sink.events) != 1 || sink.events[0] != session.SoundMusicStart {
		t.Errorf("sounds = %v, expected [MusicStart]", sink.events)
	}
}

func TestModelTickKeepsTicking(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.sess.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.sess.Ticks())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelHoldWindow(t *testing.T) {
	m, _ := newTestModel(catcher.NewWithConfig(config.DefaultCatcherConfig()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	start := m.sess.Game().(*catcher.Game).Basket().X
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < DefaultHoldTicks+5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	got := m.sess.Game().(*catcher.Game).Basket().X
	if expected := start - 5*DefaultHoldTicks; got != expected {
		t.Errorf("basket X = %v, expected %v after one hold window", got, expected)
	}
}

func TestModelOppositeKeyCancelsHold(t *testing.T) {
	m, _ := newTestModel(catcher.NewWithConfig(config.DefaultCatcherConfig()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	if m.leftHold != 0 || m.rightHold != DefaultHoldTicks {
		t.Errorf("holds = %d/%d, expected 0/%d", m.leftHold, m.rightHold, DefaultHoldTicks)
	}
}

func TestModelMouseClickStarts(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))
	col, row := m.view.cell(240, 280)

	m, _ = update(t, m, tea.MouseMsg{
		X:      col,
		Y:      row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.sess.State() != session.StatePlaying {
		t.Errorf("State() = %v, expected Playing after clicking Start", m.sess.State())
	}
}

func TestModelMouseReleaseIgnored(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))
	col, row := m.view.cell(240, 280)

	m, _ = update(t, m, tea.MouseMsg{
		X:      col,
		Y:      row,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})

	if m.sess.State() != session.StateMenu {
		t.Errorf("State() = %v, expected Menu", m.sess.State())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))

	view := m.View()
	for _, text := range []string{"Star Catcher", "Start flight", "Sound: on", "Exit", "High score: 0"} {
		if !strings.Contains(view, text) {
			t.Errorf("menu view missing %q", text)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	if view := m.View(); !strings.Contains(view, "Score: 0") || !strings.Contains(view, "Best: 0") {
		t.Error("game view should show the HUD")
	}
}

func TestModelGameOverView(t *testing.T) {
	m, _ := newTestModel(flappy.NewWithConfig(config.DefaultFlappyConfig()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 200 && m.sess.State() == session.StatePlaying; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if m.sess.State() != session.StateGameOver {
		t.Fatalf("State() = %v, expected GameOver", m.sess.State())
	}
	if view := m.View(); !strings.Contains(view, "Game Over") {
		t.Error("game over view should show the overlay")
	}
}

func TestTiltGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{60, '/'},
		{0, '>'},
		{-30, '\\'},
	}
	for _, tc := range tests {
		if got := tiltGlyph(tc.angle); got != tc.expected {
			t.Errorf("tiltGlyph(%v) = %q, expected %q", tc.angle, got, tc.expected)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorText)
	s.DrawText(0, 1, "cd", core.ColorStar)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q, expected both rows", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should join 2 rows with one newline, got %q", out)
	}
}
