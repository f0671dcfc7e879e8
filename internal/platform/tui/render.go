package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/session"
)

// colorStyles maps cell roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorAlert:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorShadow:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorPipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("77")),
	core.ColorPipeEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("29")),
	core.ColorStar:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorBasket:   lipgloss.NewStyle().Foreground(lipgloss.Color("172")),
	core.ColorButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	core.ColorGround:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

// Glyphs
const (
	pipeChar    = '█'
	starChar    = '*'
	birdChar    = '@'
	shadowChar  = '░'
	basketChar  = '▄'
	groundChar  = '▔'
	overlayChar = '·'
)

// shadowOffsetY is how far below the bird its shadow sits, in pixels.
const shadowOffsetY = 6

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawSnapshot draws one frame of the session into dst.
func drawSnapshot(dst *core.Screen, v viewport, snap session.Snapshot) {
	dst.Clear()

	switch snap.State {
	case session.StateMenu:
		drawMenu(dst, v, snap)
	case session.StatePlaying:
		drawGame(dst, v, snap)
	case session.StateGameOver:
		drawGame(dst, v, snap)
		drawGameOver(dst, v, snap)
	}
}

func drawMenu(dst *core.Screen, v viewport, snap session.Snapshot) {
	drawTextAt(dst, v, 120, snap.Title, core.ColorTitle)
	if snap.HasLives {
		drawTextAt(dst, v, 190, "Move with LEFT and RIGHT", core.ColorText)
		drawTextAt(dst, v, 210, "Catch the falling stars", core.ColorText)
	} else {
		drawTextAt(dst, v, 190, "Tap or press SPACE to flap", core.ColorText)
		drawTextAt(dst, v, 210, "Pass through gaps to score", core.ColorText)
	}

	for _, b := range snap.Buttons {
		r := v.rect(b.Box)
		dst.DrawBox(r, core.ColorButton)
		label := b.Label
		if len(label) > r.W-2 {
			label = label[:core.Max(0, r.W-2)]
		}
		dst.DrawText(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, core.ColorText)
	}

	drawTextAt(dst, v, snap.Height-60, fmt.Sprintf("High score: %d", snap.HighScore), core.ColorText)
}

func drawGame(dst *core.Screen, v viewport, snap session.Snapshot) {
	field := v.bounds()
	dst.DrawHLine(field.X, field.Bottom(), field.W, groundChar, core.ColorGround)

	for _, sp := range snap.Sprites {
		if !sp.Visible {
			continue
		}
		switch sp.Kind {
		case core.SpritePipe:
			drawPipe(dst, v.rect(sp.Box))
		case core.SpriteStar:
			c := sp.Box.Center()
			col, row := v.cell(c.X, c.Y)
			dst.SetColored(col, row, starChar, core.ColorStar)
		case core.SpriteBasket:
			dst.FillRect(v.rect(sp.Box), basketChar, core.ColorBasket)
		case core.SpritePlayer:
			drawBird(dst, v, sp)
		}
	}

	drawHUD(dst, v, snap)
}

func drawPipe(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, pipeChar, core.ColorPipe)
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetColored(r.X, y, pipeChar, core.ColorPipeEdge)
		dst.SetColored(r.Right()-1, y, pipeChar, core.ColorPipeEdge)
	}
}

func drawBird(dst *core.Screen, v viewport, sp core.Sprite) {
	c := sp.Box.Center()
	col, row := v.cell(c.X, c.Y+shadowOffsetY)
	dst.SetColored(col, row+1, shadowChar, core.ColorShadow)

	col, row = v.cell(c.X, c.Y)
	dst.SetColored(col-1, row, birdChar, core.ColorPlayer)
	dst.SetColored(col, row, tiltGlyph(sp.Angle), core.ColorPlayer)
}

// tiltGlyph picks the bird's beak by tilt angle (positive is nose-up).
func tiltGlyph(angle float64) rune {
	switch {
	case angle > 10:
		return '/'
	case angle < -10:
		return '\\'
	default:
		return '>'
	}
}

func drawHUD(dst *core.Screen, v viewport, snap session.Snapshot) {
	field := v.bounds()
	dst.DrawText(field.X+1, field.Y, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)
	dst.DrawTextRight(field.Right()-2, field.Y, fmt.Sprintf("Best: %d", snap.HighScore), core.ColorText)
	if snap.HasLives {
		lives := "Lives: " + strings.Repeat("♥", snap.Lives)
		dst.DrawText(field.X+(field.W-len([]rune(lives)))/2, field.Y, lives, core.ColorAlert)
	}
}

func drawGameOver(dst *core.Screen, v viewport, snap session.Snapshot) {
	field := v.bounds()
	for y := field.Y; y < field.Bottom(); y++ {
		for x := field.X; x < field.Right(); x++ {
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, overlayChar, core.ColorDim)
			}
		}
	}

	mid := snap.Height / 2
	drawTextAt(dst, v, mid-10, " Game Over ", core.ColorAlert)
	drawTextAt(dst, v, mid+40, fmt.Sprintf(" Score: %d  |  Best: %d ", snap.Score, snap.HighScore), core.ColorText)
	drawTextAt(dst, v, mid+90, " Press SPACE to retry or ESC to menu ", core.ColorText)
}

// drawTextAt centres text horizontally in the playfield on the row holding
// pixel y.
func drawTextAt(dst *core.Screen, v viewport, y float64, text string, c core.Color) {
	field := v.bounds()
	_, row := v.cell(0, y)
	x := field.X + (field.W-len([]rune(text)))/2
	dst.DrawText(core.Max(0, x), row, text, c)
}
