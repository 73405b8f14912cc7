package game

import (
	"math/rand"

	"github.com/dbismaya/phantom-pong/internal/core"
)

// MaxParticles caps the particle pool. Emit calls beyond the cap are
// silently dropped rather than recycling live particles.
const MaxParticles = 100

// Particle is one cosmetic spark. Life counts up in seconds; a particle
// dies when Life reaches MaxLife.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64
	MaxLife float64
	Color   core.Color
	Size    float64
}

// Alpha returns the remaining life fraction in [0, 1], used for fading.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return 1.0 - p.Life/p.MaxLife
}

// Pool is a fixed-capacity particle pool with in-order compaction: dead
// particles are dropped each tick and survivors keep their relative order,
// so emission order is stable for rendering and for determinism checks.
type Pool struct {
	items [MaxParticles]Particle
	live  int
	rng   *rand.Rand
}

// NewPool creates an empty pool drawing randomness from rng.
func NewPool(rng *rand.Rand) *Pool {
	return &Pool{rng: rng}
}

// Live returns the live particles in emission order. The slice aliases the
// pool's backing array and is only valid until the next Emit or Tick.
func (p *Pool) Live() []Particle {
	return p.items[:p.live]
}

// Count returns the number of live particles.
func (p *Pool) Count() int {
	return p.live
}

// Reset kills all particles.
func (p *Pool) Reset() {
	p.live = 0
}

// Emit spawns up to count particles at pos with randomized velocity, size,
// and lifetime. Spawning stops silently at the pool cap.
func (p *Pool) Emit(pos core.Vec2, c core.Color, count int) {
	for i := 0; i < count && p.live < MaxParticles; i++ {
		p.items[p.live] = Particle{
			Pos: pos,
			Vel: core.Vec2{
				X: float64(p.rng.Intn(401)-200) / 100.0,
				Y: float64(p.rng.Intn(401)-200) / 100.0,
			},
			MaxLife: float64(p.rng.Intn(61)+30) / 100.0,
			Color:   c,
			Size:    float64(p.rng.Intn(5) + 2),
		}
		p.live++
	}
}

// Tick ages every live particle by dt seconds, advances survivors by their
// velocity, and compacts the pool in place preserving order.
func (p *Pool) Tick(dt float64) {
	keep := 0
	for i := 0; i < p.live; i++ {
		pt := p.items[i]
		pt.Life += dt
		if pt.Life >= pt.MaxLife {
			continue
		}
		pt.Pos = pt.Pos.Add(pt.Vel)
		p.items[keep] = pt
		keep++
	}
	p.live = keep
}
