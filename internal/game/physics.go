package game

import (
	"math"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// Ball is the game ball. Velocity is in field units per tick.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Integrate advances the ball by one tick of Euler integration.
func (b *Ball) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Paddle is a player or CPU paddle. Speed is the per-tick displacement while
// a movement key is held.
type Paddle struct {
	Rect  core.RectF
	Speed float64
}

// MoveBy shifts the paddle vertically and clamps it inside the field.
func (p *Paddle) MoveBy(dy, fieldH float64) {
	p.Rect.Y = core.ClampF(p.Rect.Y+dy, 0, fieldH-p.Rect.H)
}

// resolveWalls bounces the ball off the top and bottom edges. The vertical
// velocity flips and the ball is pushed back inside with a small buffer so a
// fast ball cannot stick to the wall across consecutive ticks.
func (m *Match) resolveWalls() {
	b := &m.ball
	top := b.Radius
	bottom := m.cfg.FieldH - b.Radius
	if b.Pos.Y-b.Radius <= 0 || b.Pos.Y+b.Radius >= m.cfg.FieldH {
		b.Vel.Y = -b.Vel.Y
		if b.Pos.Y < top {
			b.Pos.Y = top + m.cfg.WallBuffer
		} else if b.Pos.Y > bottom {
			b.Pos.Y = bottom - m.cfg.WallBuffer
		}
	}
}

// hitbox is the paddle rectangle widened by the ball radius on both
// horizontal sides, so the circle test degenerates to a point-vs-rect test
// on the x axis.
func (m *Match) hitbox(p *Paddle) core.RectF {
	return p.Rect.Inflate(m.ball.Radius, 0)
}

// ballHits reports whether the ball collides with the paddle this tick.
// The test is deliberately permissive: a directional pre-check rejects
// balls moving away, then a swept test catches tunneling at high speed,
// and a plain circle-vs-rect test catches slow contact.
func (m *Match) ballHits(p *Paddle) bool {
	b := &m.ball
	box := m.hitbox(p)

	// Only consider paddles the ball is moving toward.
	onLeft := box.X < m.cfg.FieldW/2
	if onLeft && b.Vel.X >= 0 {
		return false
	}
	if !onLeft && b.Vel.X <= 0 {
		return false
	}

	// Swept check: if the ball covered real distance this tick, test the
	// current position against the hitbox inflated by one more radius. A
	// ball that jumped past the near face still lands inside the inflated
	// box as long as the per-tick displacement stays below the cap.
	if b.Vel.Len() > 0 {
		swept := box.Inflate(b.Radius, b.Radius)
		if swept.Contains(b.Pos) {
			return true
		}
	}

	return box.IntersectsCircle(b.Pos, b.Radius)
}

// resolvePaddle applies the hit response if the ball collides with the
// paddle: the horizontal speed ratchets up to the cap, the bounce direction
// is away from the paddle, and the exit angle follows the hit offset.
func (m *Match) resolvePaddle(p *Paddle) bool {
	if !m.ballHits(p) {
		return false
	}
	b := &m.ball

	speed := math.Min(math.Abs(b.Vel.X)+m.cfg.SpeedIncrement, m.cfg.MaxBallSpeed*m.multiplier)

	// Normalized vertical offset of the contact point: -1 at the paddle's
	// top edge, 0 at center, +1 at the bottom edge.
	hitOffset := (b.Pos.Y - p.Rect.CenterY()) / (p.Rect.H / 2)

	// The sign always points away from the hit paddle. No repositioning is
	// needed: once the sign flips, the directional pre-check rejects this
	// paddle on subsequent ticks even while the shapes still overlap.
	if p.Rect.X < m.cfg.FieldW/2 {
		b.Vel.X = speed
	} else {
		b.Vel.X = -speed
	}
	b.Vel.Y = hitOffset * speed * 0.75

	return true
}
