package game

import (
	"math"
	"testing"

	"github.com/dbismaya/phantom-pong/internal/core"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestBallIntegration(t *testing.T) {
	m := playingMatch(t, ModeDuel)

	// A ball at field center moving horizontally advances by exactly its
	// velocity and touches nothing.
	m.ball = Ball{
		Pos:    core.Vec2{X: 640, Y: 400},
		Vel:    core.Vec2{X: 8, Y: 0},
		Radius: m.cfg.BallRadius,
	}
	m.Step(frame())

	if m.ball.Pos.X != 648 || m.ball.Pos.Y != 400 {
		t.Errorf("ball position = %+v, expected (648, 400)", m.ball.Pos)
	}
	if m.ball.Vel.X != 8 || m.ball.Vel.Y != 0 {
		t.Errorf("velocity should be untouched, got %+v", m.ball.Vel)
	}
}

func TestWallBounce(t *testing.T) {
	m := playingMatch(t, ModeDuel)
	cfg := m.cfg

	t.Run("bottom wall", func(t *testing.T) {
		m.ball = Ball{
			Pos:    core.Vec2{X: 640, Y: 795},
			Vel:    core.Vec2{X: 8, Y: 3},
			Radius: cfg.BallRadius,
		}
		m.Step(frame())

		if m.ball.Vel.Y != -3 {
			t.Errorf("vertical velocity = %v, expected -3", m.ball.Vel.Y)
		}
		want := cfg.FieldH - cfg.BallRadius - cfg.WallBuffer
		if m.ball.Pos.Y != want {
			t.Errorf("ball Y = %v, expected %v", m.ball.Pos.Y, want)
		}
	})

	t.Run("top wall", func(t *testing.T) {
		m.ball = Ball{
			Pos:    core.Vec2{X: 640, Y: 5},
			Vel:    core.Vec2{X: 8, Y: -3},
			Radius: cfg.BallRadius,
		}
		m.Step(frame())

		if m.ball.Vel.Y != 3 {
			t.Errorf("vertical velocity = %v, expected 3", m.ball.Vel.Y)
		}
		want := cfg.BallRadius + cfg.WallBuffer
		if m.ball.Pos.Y != want {
			t.Errorf("ball Y = %v, expected %v", m.ball.Pos.Y, want)
		}
	})

	t.Run("position stays inside the field", func(t *testing.T) {
		m.ball = Ball{
			Pos:    core.Vec2{X: 640, Y: 400},
			Vel:    core.Vec2{X: 6, Y: 14},
			Radius: cfg.BallRadius,
		}
		for i := 0; i < 500; i++ {
			m.Step(frame())
			y := m.ball.Pos.Y
			if y < cfg.BallRadius || y > cfg.FieldH-cfg.BallRadius {
				t.Fatalf("tick %d: ball Y = %v escaped [%v, %v]", i, y, cfg.BallRadius, cfg.FieldH-cfg.BallRadius)
			}
		}
	})
}

func TestPaddleHitResponse(t *testing.T) {
	t.Run("center hit gives zero vertical velocity", func(t *testing.T) {
		m := playingMatch(t, ModeDuel)
		m.ball = Ball{
			Pos:    core.Vec2{X: 60, Y: m.left.Rect.CenterY()},
			Vel:    core.Vec2{X: -8, Y: 0},
			Radius: m.cfg.BallRadius,
		}
		m.Step(frame())

		if !almostEqual(m.ball.Vel.X, 8.2) {
			t.Errorf("post-hit horizontal speed = %v, expected 8.2", m.ball.Vel.X)
		}
		if m.ball.Vel.Y != 0 {
			t.Errorf("center hit vertical velocity = %v, expected 0", m.ball.Vel.Y)
		}
	})

	t.Run("off-center hit imparts angle", func(t *testing.T) {
		m := playingMatch(t, ModeDuel)

		// Halfway up the paddle: hit offset -0.5.
		m.ball = Ball{
			Pos:    core.Vec2{X: 60, Y: m.left.Rect.CenterY() - m.left.Rect.H/4},
			Vel:    core.Vec2{X: -8, Y: 0},
			Radius: m.cfg.BallRadius,
		}
		m.Step(frame())

		want := -0.5 * 8.2 * 0.75
		if !almostEqual(m.ball.Vel.Y, want) {
			t.Errorf("vertical velocity = %v, expected %v", m.ball.Vel.Y, want)
		}
	})

	t.Run("speed ratchets up to the cap", func(t *testing.T) {
		m := playingMatch(t, ModeDuel)
		cfg := m.cfg

		m.ball = Ball{
			Pos:    core.Vec2{X: 60, Y: m.left.Rect.CenterY()},
			Vel:    core.Vec2{X: -14.9, Y: 0},
			Radius: cfg.BallRadius,
		}
		m.Step(frame())

		if m.ball.Vel.X != cfg.MaxBallSpeed*m.multiplier {
			t.Errorf("speed = %v, expected the cap %v", m.ball.Vel.X, cfg.MaxBallSpeed*m.multiplier)
		}
	})

	t.Run("speed never decreases on a hit", func(t *testing.T) {
		m := playingMatch(t, ModeDuel)
		for _, vx := range []float64{-2, -8, -14, -15} {
			m.ball = Ball{
				Pos:    core.Vec2{X: 60, Y: m.left.Rect.CenterY()},
				Vel:    core.Vec2{X: vx, Y: 0},
				Radius: m.cfg.BallRadius,
			}
			m.Step(frame())
			if math.Abs(m.ball.Vel.X) < math.Abs(vx) {
				t.Errorf("hit at |vx|=%v slowed the ball to %v", math.Abs(vx), m.ball.Vel.X)
			}
		}
	})

	t.Run("right paddle sends the ball left", func(t *testing.T) {
		m := playingMatch(t, ModeDuel)
		m.ball = Ball{
			Pos:    core.Vec2{X: m.cfg.FieldW - 60, Y: m.right.Rect.CenterY()},
			Vel:    core.Vec2{X: 8, Y: 0},
			Radius: m.cfg.BallRadius,
		}
		m.Step(frame())

		if m.ball.Vel.X >= 0 {
			t.Errorf("ball should bounce away from the right paddle, vx = %v", m.ball.Vel.X)
		}
	})
}

func TestBallHitsDirectionalCheck(t *testing.T) {
	m := playingMatch(t, ModeDuel)

	// Ball overlapping the left paddle but moving away must not collide;
	// this is what prevents a double hit on consecutive ticks.
	m.ball = Ball{
		Pos:    core.Vec2{X: 40, Y: m.left.Rect.CenterY()},
		Vel:    core.Vec2{X: 8, Y: 0},
		Radius: m.cfg.BallRadius,
	}
	if m.ballHits(&m.left) {
		t.Error("ball moving away from the paddle should not collide")
	}

	m.ball.Vel.X = -8
	if !m.ballHits(&m.left) {
		t.Error("ball moving toward the overlapping paddle should collide")
	}
}

func TestBallHitsSweptAtHighSpeed(t *testing.T) {
	m := playingMatch(t, ModeDuel)

	// At the speed cap the ball can jump past the paddle's near face in a
	// single tick; the swept test must still register the hit.
	m.ball = Ball{
		Pos:    core.Vec2{X: 70, Y: m.left.Rect.CenterY()},
		Vel:    core.Vec2{X: -15, Y: 0},
		Radius: m.cfg.BallRadius,
	}
	m.Step(frame())

	if m.ball.Vel.X <= 0 {
		t.Errorf("fast ball tunneled through the paddle, vx = %v", m.ball.Vel.X)
	}
}

func TestPaddleMoveByClamps(t *testing.T) {
	p := Paddle{Rect: core.RectF{X: 10, Y: 300, W: 25, H: 200}, Speed: 12}

	p.MoveBy(-1000, 800)
	if p.Rect.Y != 0 {
		t.Errorf("paddle should clamp at 0, got %v", p.Rect.Y)
	}

	p.MoveBy(1000, 800)
	if p.Rect.Y != 600 {
		t.Errorf("paddle should clamp at 600, got %v", p.Rect.Y)
	}
}
