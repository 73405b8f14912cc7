package game

import (
	"math"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// cpuDifficulty derives the CPU skill level from the ball-speed multiplier.
// A faster ball demands better accuracy, so difficulty scales with the
// multiplier while staying inside a playable band.
func cpuDifficulty(multiplier float64) float64 {
	d := 0.7 * (1.0 + (multiplier-1.0)*0.5)
	return core.ClampF(d, 0.5, 0.95)
}

// predictInterceptY projects where the ball will cross the paddle's plane,
// folding the projection through the top and bottom walls until it lands
// inside the field. When the ball moves away the CPU just tracks its
// current height.
func predictInterceptY(paddle Paddle, ball Ball, fieldH float64) float64 {
	predicted := ball.Pos.Y
	// A degenerate field has no walls to fold through; tracking the ball's
	// current height keeps the controller total.
	if fieldH <= 0 || ball.Vel.X <= 0 {
		return predicted
	}

	t := (paddle.Rect.X - ball.Pos.X) / ball.Vel.X
	if t <= 0 {
		return predicted
	}

	predicted = ball.Pos.Y + ball.Vel.Y*t
	for predicted < 0 || predicted > fieldH {
		if predicted < 0 {
			predicted = -predicted
		} else {
			predicted = 2*fieldH - predicted
		}
	}
	return predicted
}

// updateCPU moves the right paddle toward the predicted intercept with
// proportional easing. Difficulty scales both the reaction imprecision and
// the movement speed cap, so a harder CPU both aims and moves better.
func (m *Match) updateCPU() {
	p := &m.right
	diff := cpuDifficulty(m.multiplier)

	predicted := predictInterceptY(*p, m.ball, m.cfg.FieldH)
	target := predicted - p.Rect.H/2

	// Occasional aim error, more frequent and larger at low difficulty.
	if m.rng.Intn(101) < int(30*(1.0-diff)) {
		target += float64(m.rng.Intn(61)-30) * (1.0 - diff)
	}

	target = core.ClampF(target, 0, m.cfg.FieldH-p.Rect.H)

	dist := target - p.Rect.Y
	if math.Abs(dist) > 1.0 {
		step := dist * 0.1 * diff
		maxStep := p.Speed * diff
		if math.Abs(step) > maxStep {
			step = math.Copysign(maxStep, dist)
		}
		p.Rect.Y += step
	}

	p.Rect.Y = core.ClampF(p.Rect.Y, 0, m.cfg.FieldH-p.Rect.H)
}
