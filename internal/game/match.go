// Package game implements the Pong simulation: the phase state machine,
// ball and paddle physics, the CPU paddle controller, and the particle pool.
// It is pure logic driven by one Step call per tick; rendering and input
// mapping live in the platform layer.
package game

import (
	"math/rand"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// Phase is the current screen of the match state machine.
type Phase int

const (
	PhaseSplash Phase = iota
	PhaseModeSelect
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "Splash"
	case PhaseModeSelect:
		return "ModeSelect"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Mode selects who controls the right paddle.
type Mode int

const (
	ModeCPU  Mode = iota // Player vs CPU
	ModeDuel             // Player vs Player on one keyboard
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeCPU:
		return "cpu"
	case ModeDuel:
		return "duel"
	default:
		return "unknown"
	}
}

// Sound receives fire-and-forget audio cues from the simulation.
// Implementations must not block the tick loop.
type Sound interface {
	PaddleHit()
	Score()
}

// NopSound discards all cues.
type NopSound struct{}

func (NopSound) PaddleHit() {}
func (NopSound) Score()     {}

// Multiplier bounds for the ball-speed setting on the mode-select screen.
const (
	MinMultiplier  = 0.5
	MaxMultiplier  = 2.0
	multiplierStep = 0.1
)

// State is the externally visible match state after a tick.
type State struct {
	Phase      Phase
	Mode       Mode
	ScoreLeft  int
	ScoreRight int
	Winner     core.PlayerID // 0 while the match is undecided
	Multiplier float64
}

// StepResult is returned by Match.Step after each simulation tick.
type StepResult struct {
	State State
}

// Match owns the ball, both paddles, the scores, and the particle pool for
// the lifetime of one process. Selecting a mode or restarting rebuilds all
// entities; nothing is shared across matches.
type Match struct {
	cfg   Config
	phase Phase
	mode  Mode

	ball  Ball
	left  Paddle
	right Paddle

	scoreLeft  int
	scoreRight int
	winner     core.PlayerID

	multiplier float64
	rng        *rand.Rand
	sound      Sound
	particles  *Pool
	tick       uint64

	// Cosmetic state, never read by physics.
	shake      float64
	shakeX     float64
	shakeY     float64
	scoreAnim  float64
	splashTime float64
	demoBall   Ball
}

// Config aliases the core configuration for this package's constructors.
type Config = core.Config

// NewMatch creates a match on the splash screen. A nil sound sink is
// replaced with NopSound.
func NewMatch(cfg Config, sound Sound) *Match {
	if sound == nil {
		sound = NopSound{}
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	m := &Match{
		cfg:        cfg,
		phase:      PhaseSplash,
		multiplier: 1.0,
		rng:        rng,
		sound:      sound,
		particles:  NewPool(rng),
		scoreAnim:  1.0,
	}
	m.demoBall = Ball{
		Pos:    core.Vec2{X: cfg.FieldW * 0.25, Y: cfg.FieldH * 0.5},
		Vel:    core.Vec2{X: 3, Y: 2},
		Radius: 15,
	}
	return m
}

// Step advances the simulation by one tick. Input sampling, paddle movement,
// ball integration, collision resolution, and scoring happen in that fixed
// order; terminal-for-the-tick phases run no physics.
func (m *Match) Step(in core.InputFrame) StepResult {
	dt := 1.0 / float64(m.cfg.TickRate)
	m.tick++

	switch m.phase {
	case PhaseSplash:
		m.stepSplash(in, dt)
	case PhaseModeSelect:
		m.stepModeSelect(in)
	case PhasePlaying:
		m.stepPlaying(in)
	case PhasePaused:
		if in.Has(core.ActionPause) {
			m.phase = PhasePlaying
		}
	case PhaseGameOver:
		m.stepGameOver(in)
	}

	m.particles.Tick(dt)
	m.decayEffects(dt)

	return StepResult{State: m.State()}
}

func (m *Match) stepSplash(in core.InputFrame, dt float64) {
	if in.Has(core.ActionConfirm) {
		m.phase = PhaseModeSelect
		return
	}

	// Background ambience: a slow demo ball bouncing inside a margin.
	m.splashTime += dt
	const margin = 50
	m.demoBall.Pos = m.demoBall.Pos.Add(m.demoBall.Vel)
	if m.demoBall.Pos.X < margin || m.demoBall.Pos.X > m.cfg.FieldW-margin {
		m.demoBall.Vel.X = -m.demoBall.Vel.X
	}
	if m.demoBall.Pos.Y < margin || m.demoBall.Pos.Y > m.cfg.FieldH-margin {
		m.demoBall.Vel.Y = -m.demoBall.Vel.Y
	}
}

func (m *Match) stepModeSelect(in core.InputFrame) {
	if in.Has(core.ActionMenu) {
		m.phase = PhaseSplash
		return
	}

	switch {
	case in.Has(core.ActionSpeedUp):
		m.setMultiplier(m.multiplier + multiplierStep)
	case in.Has(core.ActionSpeedDown):
		m.setMultiplier(m.multiplier - multiplierStep)
	}

	switch {
	case in.Has(core.ActionModeCPU):
		m.startMatch(ModeCPU)
	case in.Has(core.ActionModeDuel):
		m.startMatch(ModeDuel)
	}
}

func (m *Match) stepGameOver(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart):
		m.startMatch(m.mode)
	case in.Has(core.ActionMenu):
		m.phase = PhaseModeSelect
	}
}

// setMultiplier clamps and snaps the ball-speed multiplier to 0.1 steps.
func (m *Match) setMultiplier(v float64) {
	v = core.ClampF(v, MinMultiplier, MaxMultiplier)
	m.multiplier = float64(int(v*10+0.5)) / 10
}

// startMatch performs full match initialization: scores zeroed, entities
// re-created, ball served by the left player.
func (m *Match) startMatch(mode Mode) {
	m.mode = mode
	m.phase = PhasePlaying
	m.scoreLeft = 0
	m.scoreRight = 0
	m.winner = 0

	centerY := (m.cfg.FieldH - m.cfg.PaddleH) / 2
	m.left = Paddle{
		Rect: core.RectF{
			X: m.cfg.PaddleOffset,
			Y: centerY,
			W: m.cfg.PaddleW,
			H: m.cfg.PaddleH,
		},
		Speed: m.cfg.PaddleSpeed,
	}
	m.right = Paddle{
		Rect: core.RectF{
			X: m.cfg.FieldW - m.cfg.PaddleOffset - m.cfg.PaddleW,
			Y: centerY,
			W: m.cfg.PaddleW,
			H: m.cfg.PaddleH,
		},
		Speed: m.cfg.PaddleSpeed,
	}

	m.particles.Reset()
	m.shake = 0
	m.shakeX, m.shakeY = 0, 0
	m.scoreAnim = 1.0

	m.serve(core.Player1)
}

// serve resets the ball to center with a fresh velocity away from the
// serving side. The horizontal speed ratchet resets here and nowhere else.
func (m *Match) serve(server core.PlayerID) {
	speed := m.cfg.BallSpeed * m.multiplier
	vx := speed
	burst := core.ColorRed
	if server == core.Player2 {
		vx = -speed
		burst = core.ColorBlue
	}
	m.ball = Ball{
		Pos:    core.Vec2{X: m.cfg.FieldW / 2, Y: m.cfg.FieldH / 2},
		Vel:    core.Vec2{X: vx, Y: (m.rng.Float64()*2 - 1) * speed},
		Radius: m.cfg.BallRadius,
	}
	m.scoreAnim = 1.5
	m.particles.Emit(m.ball.Pos, burst, 30)
}

func (m *Match) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		m.phase = PhasePaused
		return
	}

	// Left paddle from held input.
	var move float64
	if in.Has(core.ActionP1Up) {
		move -= m.left.Speed
	}
	if in.Has(core.ActionP1Down) {
		move += m.left.Speed
	}
	m.left.MoveBy(move, m.cfg.FieldH)

	// Right paddle: CPU controller or second-player input.
	if m.mode == ModeCPU {
		m.updateCPU()
	} else {
		move = 0
		if in.Has(core.ActionP2Up) {
			move -= m.right.Speed
		}
		if in.Has(core.ActionP2Down) {
			move += m.right.Speed
		}
		m.right.MoveBy(move, m.cfg.FieldH)
	}

	m.ball.Integrate()
	m.resolveWalls()

	if m.resolvePaddle(&m.left) || m.resolvePaddle(&m.right) {
		m.sound.PaddleHit()
		m.shake = 5.0
		m.particles.Emit(m.ball.Pos, core.ColorWhite, 15)
	}

	m.resolveScoring()

	if m.scoreLeft >= m.cfg.WinScore || m.scoreRight >= m.cfg.WinScore {
		if m.scoreLeft >= m.cfg.WinScore {
			m.winner = core.Player1
		} else {
			m.winner = core.Player2
		}
		m.phase = PhaseGameOver
	}
}

// resolveScoring turns a horizontal out-of-bounds into a point and a
// re-serve. The two edges are mutually exclusive within one tick because
// the serve recenters the ball immediately.
func (m *Match) resolveScoring() {
	switch {
	case m.ball.Pos.X < -m.ball.Radius:
		m.scoreRight++
		m.sound.Score()
		m.serve(core.Player2)
	case m.ball.Pos.X > m.cfg.FieldW+m.ball.Radius:
		m.scoreLeft++
		m.sound.Score()
		m.serve(core.Player1)
	}
}

// decayEffects advances the purely cosmetic scalars.
func (m *Match) decayEffects(dt float64) {
	m.shake *= 0.9
	if m.shake > 0.1 {
		m.shakeX = float64(m.rng.Intn(21)-10) * (m.shake / 10.0)
		m.shakeY = float64(m.rng.Intn(21)-10) * (m.shake / 10.0)
	} else {
		m.shake = 0
		m.shakeX, m.shakeY = 0, 0
	}

	if m.scoreAnim > 1.0 {
		m.scoreAnim -= dt
		if m.scoreAnim < 1.0 {
			m.scoreAnim = 1.0
		}
	}
}

// State returns the externally visible match state.
func (m *Match) State() State {
	return State{
		Phase:      m.phase,
		Mode:       m.mode,
		ScoreLeft:  m.scoreLeft,
		ScoreRight: m.scoreRight,
		Winner:     m.winner,
		Multiplier: m.multiplier,
	}
}

// Tick returns the number of Step calls since construction.
func (m *Match) Tick() uint64 {
	return m.tick
}

// Config returns the immutable configuration the match was built with.
func (m *Match) Config() Config {
	return m.cfg
}
