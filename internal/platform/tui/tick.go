// Package tui runs a Star Catcher session in the terminal with Bubble Tea.
// It owns the frame clock, maps keys and mouse presses to session actions,
// and draws session snapshots scaled from playfield pixels to cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the nominal simulation rate. One tick is one frame.
const DefaultFPS = 60

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = DefaultFPS
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
