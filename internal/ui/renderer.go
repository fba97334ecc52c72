package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pongsim/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	TrailChar  = '\u00B7' // ·
	PaddleChar = '\u2588' // █
)

// Renderer draws engine snapshots onto the terminal, scaling field
// coordinates to whatever size the terminal happens to be.
type Renderer struct {
	screen *Screen
	cfg    game.Config
}

// NewRenderer creates a renderer for the given field geometry.
func NewRenderer(screen *Screen, cfg game.Config) *Renderer {
	return &Renderer{screen: screen, cfg: cfg}
}

// RenderMatch draws the court, paddles, ball and scoreboard for one
// snapshot.
func (r *Renderer) RenderMatch(snap game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Row 0 is the scoreboard; the court fills the rest.
	courtH := screenH - 1
	scaleX := float64(screenW) / r.cfg.FieldWidth
	scaleY := float64(courtH) / r.cfg.FieldHeight

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, courtH, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(snap, screenW)
	r.renderPaddle(snap.Left, scaleX, scaleY)
	r.renderPaddle(snap.Right, scaleX, scaleY)

	// Trail first so the ball draws over it
	trailStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, pos := range snap.BallTrail {
		r.screen.SetCell(int(pos.X*scaleX), int(pos.Y*scaleY)+1, trailStyle, TrailChar)
	}

	if snap.Phase == game.PhasePlaying || snap.Phase == game.PhasePaused {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(int(snap.BallPos.X*scaleX), int(snap.BallPos.Y*scaleY)+1, ballStyle, BallChar)
	}

	r.renderBanner(snap, screenW, screenH)
	r.screen.Show()
}

func (r *Renderer) renderPaddle(p game.PaddleView, scaleX, scaleY float64) {
	style := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	if p.Flashing {
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}

	x := int(p.X * scaleX)
	top := int(p.Y*scaleY) + 1
	height := int(p.Height * scaleY)
	if height < 1 {
		height = 1
	}
	for dy := 0; dy < height; dy++ {
		r.screen.SetCell(x, top+dy, style, PaddleChar)
	}
}

func (r *Renderer) renderScoreboard(snap game.Snapshot, screenW int) {
	score := fmt.Sprintf(" %d : %d ", snap.ScoreLeft, snap.ScoreRight)
	style := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(score))/2, 0, score, style)

	rally := fmt.Sprintf("rally %d (best %d)", snap.Rally, snap.MaxRally)
	r.screen.DrawText(2, 0, rally, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) renderBanner(snap game.Snapshot, screenW, screenH int) {
	var text string
	switch snap.Phase {
	case game.PhaseReady:
		text = "Press ENTER to start"
	case game.PhaseCountdown:
		secs := snap.Countdown/60 + 1
		text = fmt.Sprintf("Serving in %d...", secs)
	case game.PhasePaused:
		text = "PAUSED - press p to resume"
	case game.PhaseGameOver:
		winner := "Right"
		if snap.ScoreLeft > snap.ScoreRight {
			winner = "Left"
		}
		text = fmt.Sprintf("%s side wins! Press q to quit", winner)
	default:
		return
	}

	style := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorGreen)
	r.screen.DrawText((screenW-len(text))/2, screenH/2, text, style)
}
