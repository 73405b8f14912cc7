package game

import "math"

// Snapshot captures the observable simulation state at one tick with floats
// quantized to fixed-point, so two runs can be compared with plain equality.
// Used by determinism tests and debug dumps.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Mode       Mode
	BallX      int64
	BallY      int64
	BallVX     int64
	BallVY     int64
	LeftY      int64
	RightY     int64
	ScoreLeft  int
	ScoreRight int
	Winner     int
	Particles  int
	Multiplier int64
}

func quantize(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current state as a comparable value.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:       m.tick,
		Phase:      m.phase,
		Mode:       m.mode,
		BallX:      quantize(m.ball.Pos.X),
		BallY:      quantize(m.ball.Pos.Y),
		BallVX:     quantize(m.ball.Vel.X),
		BallVY:     quantize(m.ball.Vel.Y),
		LeftY:      quantize(m.left.Rect.Y),
		RightY:     quantize(m.right.Rect.Y),
		ScoreLeft:  m.scoreLeft,
		ScoreRight: m.scoreRight,
		Winner:     int(m.winner),
		Particles:  m.particles.Count(),
		Multiplier: quantize(m.multiplier),
	}
}
