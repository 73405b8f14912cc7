package game

import (
	"fmt"
	"math"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// Render draws the current phase onto the screen buffer. The simulation runs
// in field units; rendering projects the field onto whatever cell grid the
// terminal provides, so gameplay is identical at any window size.
func (m *Match) Render(s *core.Screen) {
	s.Clear()
	switch m.phase {
	case PhaseSplash:
		m.renderSplash(s)
	case PhaseModeSelect:
		m.renderModeSelect(s)
	default:
		m.renderArena(s)
		switch m.phase {
		case PhasePaused:
			m.renderPauseOverlay(s)
		case PhaseGameOver:
			m.renderGameOverOverlay(s)
		}
	}
}

// projectX maps a field x-coordinate to a screen column.
func (m *Match) projectX(s *core.Screen, x float64) int {
	return int(x / m.cfg.FieldW * float64(s.Width()))
}

// projectY maps a field y-coordinate to a screen row.
func (m *Match) projectY(s *core.Screen, y float64) int {
	return int(y / m.cfg.FieldH * float64(s.Height()))
}

// shakeOffset converts the field-unit shake displacement to whole cells.
func (m *Match) shakeOffset() (int, int) {
	return int(m.shakeX / 5.0), int(m.shakeY / 5.0)
}

func (m *Match) renderSplash(s *core.Screen) {
	midY := s.Height() / 2

	// Title bobs on a slow sine wave.
	bob := int(math.Round(math.Sin(m.splashTime*1.5) * 1.5))
	s.DrawTextCentered(midY-3+bob, "P H A N T O M   P O N G", core.ColorWhite)
	s.DrawTextCentered(midY-1, "A Game By Bismaya", core.ColorAccent)

	// Start prompt pulses between two colors.
	promptColor := core.ColorWhite
	if int(m.splashTime*2)%2 == 0 {
		promptColor = core.ColorAccent
	}
	s.DrawTextCentered(midY+2, "Press Enter to Start", promptColor)
	s.DrawTextCentered(s.Height()-1, "Press F for Fullscreen", core.ColorDim)

	// Decorative paddles at the edges and the demo ball drifting behind
	// the title.
	s.DrawVLine(2, midY-2, 5, '█', core.ColorBlue)
	s.DrawVLine(s.Width()-3, midY-2, 5, '█', core.ColorRed)
	s.Set(m.projectX(s, m.demoBall.Pos.X), m.projectY(s, m.demoBall.Pos.Y), '●', core.ColorDim)
}

func (m *Match) renderModeSelect(s *core.Screen) {
	midY := s.Height() / 2

	s.DrawTextCentered(midY-5, "SELECT GAME MODE", core.ColorWhite)
	s.DrawTextCentered(midY-2, "1. Player vs AI", core.ColorYellow)
	s.DrawTextCentered(midY-1, "2. Player vs Player", core.ColorYellow)

	// Speed slider: a bar from MinMultiplier to MaxMultiplier with the
	// current setting marked.
	label := fmt.Sprintf("Ball Speed: %.1fx", m.multiplier)
	s.DrawTextCentered(midY+2, label, core.ColorWhite)

	const sliderW = 21
	sx := (s.Width() - sliderW) / 2
	sy := midY + 3
	frac := (m.multiplier - MinMultiplier) / (MaxMultiplier - MinMultiplier)
	marker := sx + int(frac*float64(sliderW-1))
	s.DrawText(sx-5, sy, "Slow", core.ColorDim)
	s.DrawText(sx+sliderW+1, sy, "Fast", core.ColorDim)
	for x := sx; x < sx+sliderW; x++ {
		s.Set(x, sy, '─', core.ColorGray)
	}
	s.Set(marker, sy, '◆', core.ColorAccent)

	s.DrawTextCentered(midY+5, "Use +/- or Left/Right to adjust speed", core.ColorDim)
	s.DrawTextCentered(s.Height()-1, "Press F for Fullscreen", core.ColorDim)
}

func (m *Match) renderArena(s *core.Screen) {
	ox, oy := m.shakeOffset()

	// Center court line, dashed.
	cx := s.Width()/2 + ox
	for y := 0; y < s.Height(); y += 2 {
		s.Set(cx, y+oy, '╎', core.ColorDim)
	}

	m.renderPaddle(s, &m.left, core.ColorBlue, ox, oy)
	rightColor := core.ColorRed
	if m.mode == ModeDuel {
		rightColor = core.ColorGreen
	}
	m.renderPaddle(s, &m.right, rightColor, ox, oy)

	// Particles draw under the ball, faded by remaining life.
	for _, p := range m.particles.Live() {
		glyph := '·'
		if p.Size*p.Alpha() > 3 {
			glyph = '•'
		}
		s.Set(m.projectX(s, p.Pos.X)+ox, m.projectY(s, p.Pos.Y)+oy, glyph, core.Fade(p.Alpha()))
	}

	s.Set(m.projectX(s, m.ball.Pos.X)+ox, m.projectY(s, m.ball.Pos.Y)+oy, '●', core.ColorWhite)

	m.renderScores(s)
}

func (m *Match) renderPaddle(s *core.Screen, p *Paddle, c core.Color, ox, oy int) {
	x := m.projectX(s, p.Rect.X+p.Rect.W/2) + ox
	top := m.projectY(s, p.Rect.Y) + oy
	h := core.Max(m.projectY(s, p.Rect.Bottom())-m.projectY(s, p.Rect.Y), 1)
	s.DrawVLine(x, top, h, '█', c)
}

func (m *Match) renderScores(s *core.Screen) {
	// Fresh points flash in the accent color while the score animation
	// scale decays back to rest.
	scoreColor := core.ColorWhite
	if m.scoreAnim > 1.0 {
		scoreColor = core.ColorAccent
	}

	leftX := s.Width() / 4
	rightX := s.Width() * 3 / 4
	leftLabel := "P1"
	rightLabel := "AI"
	if m.mode == ModeDuel {
		rightLabel = "P2"
	}

	leftScore := fmt.Sprintf("%d", m.scoreLeft)
	rightScore := fmt.Sprintf("%d", m.scoreRight)
	s.DrawText(leftX-len(leftScore)/2, 1, leftScore, scoreColor)
	s.DrawText(rightX-len(rightScore)/2, 1, rightScore, scoreColor)
	s.DrawText(leftX-1, 2, leftLabel, core.ColorBlue)
	rc := core.ColorRed
	if m.mode == ModeDuel {
		rc = core.ColorGreen
	}
	s.DrawText(rightX-1, 2, rightLabel, rc)
}

func (m *Match) renderPauseOverlay(s *core.Screen) {
	m.renderOverlayBox(s, "GAME PAUSED", "Press P to resume")
}

func (m *Match) renderGameOverOverlay(s *core.Screen) {
	var winner string
	switch {
	case m.winner == core.Player1 && m.mode == ModeCPU:
		winner = "YOU WIN!"
	case m.winner == core.Player1:
		winner = "PLAYER 1 WINS!"
	case m.mode == ModeCPU:
		winner = "AI WINS!"
	default:
		winner = "PLAYER 2 WINS!"
	}
	m.renderOverlayBox(s, winner, "Press R to restart   Press M for menu")
}

// renderOverlayBox draws a centered two-line message inside a border on top
// of the arena.
func (m *Match) renderOverlayBox(s *core.Screen, title, hint string) {
	w := core.Max(len(title), len(hint)) + 6
	h := 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	box := core.NewRect(x, y, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorAccent)
	s.DrawTextCentered(y+1, title, core.ColorWhite)
	s.DrawTextCentered(y+3, hint, core.ColorAccent)
}
