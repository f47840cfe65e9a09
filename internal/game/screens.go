package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/driftworks/rockfall/internal/draw"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hudStyle      = lipgloss.NewStyle().Bold(true)
	promptStyle   = lipgloss.NewStyle().Faint(true)
	gameOverStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// drawUI draws the screen overlay for the current phase.
func drawUI(w io.Writer, canvas *draw.Canvas, phase Phase, score int) {
	termWidth := canvas.TerminalWidth()
	termHeight := canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch phase {
	case PhaseStart:
		drawCentered(w, centerX, centerY-2, titleStyle, "R O C K F A L L")
		drawCentered(w, centerX, centerY+1, promptStyle, "Press SPACE to start")
		drawCentered(w, centerX, centerY+4, promptStyle,
			"A/D or arrows to turn, W/S to move, SPACE to shoot, Q to quit")
	case PhasePlaying:
		draw.MoveCursor(w, 2, 1)
		fmt.Fprint(w, hudStyle.Render(fmt.Sprintf("Score: %d", score)))
	case PhaseGameOver:
		drawCentered(w, centerX, centerY-2, gameOverStyle, "GAME OVER")
		drawCentered(w, centerX, centerY, hudStyle, fmt.Sprintf("Final score: %d", score))
		drawCentered(w, centerX, centerY+2, promptStyle, "Press SPACE to restart, Q to quit")
	}
}

// drawCentered writes styled text horizontally centered on centerX.
func drawCentered(w io.Writer, centerX, y int, style lipgloss.Style, text string) {
	x := centerX - len(text)/2
	if x < 1 {
		x = 1
	}
	draw.MoveCursor(w, x, y)
	fmt.Fprint(w, style.Render(text))
}
