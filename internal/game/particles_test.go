package game

import (
	"math/rand"
	"testing"

	"github.com/dbismaya/phantom-pong/internal/core"
)

func newTestPool() *Pool {
	return NewPool(rand.New(rand.NewSource(1)))
}

func TestPoolEmitCapped(t *testing.T) {
	p := newTestPool()

	p.Emit(core.Vec2{X: 640, Y: 400}, core.ColorWhite, 60)
	if p.Count() != 60 {
		t.Fatalf("Count = %d, expected 60", p.Count())
	}

	// The second burst is truncated at the cap, silently.
	p.Emit(core.Vec2{X: 640, Y: 400}, core.ColorWhite, 60)
	if p.Count() != MaxParticles {
		t.Errorf("Count = %d, expected the cap %d", p.Count(), MaxParticles)
	}

	p.Emit(core.Vec2{X: 0, Y: 0}, core.ColorRed, 10)
	if p.Count() != MaxParticles {
		t.Errorf("emitting at the cap should be a no-op, Count = %d", p.Count())
	}
}

func TestPoolEmitRanges(t *testing.T) {
	p := newTestPool()
	p.Emit(core.Vec2{X: 100, Y: 200}, core.ColorRed, MaxParticles)

	for i, pt := range p.Live() {
		if pt.Pos.X != 100 || pt.Pos.Y != 200 {
			t.Fatalf("particle %d spawned at %+v, expected the emit point", i, pt.Pos)
		}
		if pt.Vel.X < -2 || pt.Vel.X > 2 || pt.Vel.Y < -2 || pt.Vel.Y > 2 {
			t.Errorf("particle %d velocity %+v outside [-2, 2]", i, pt.Vel)
		}
		if pt.MaxLife < 0.3 || pt.MaxLife > 0.9 {
			t.Errorf("particle %d lifetime %v outside [0.3, 0.9]", i, pt.MaxLife)
		}
		if pt.Size < 2 || pt.Size > 6 {
			t.Errorf("particle %d size %v outside [2, 6]", i, pt.Size)
		}
		if pt.Color != core.ColorRed {
			t.Errorf("particle %d color = %v, expected red", i, pt.Color)
		}
	}
}

func TestPoolTickMovesAndAges(t *testing.T) {
	p := newTestPool()
	p.Emit(core.Vec2{X: 100, Y: 200}, core.ColorWhite, 5)

	before := make([]Particle, 5)
	copy(before, p.Live())

	p.Tick(0.01)

	for i, pt := range p.Live() {
		want := before[i].Pos.Add(before[i].Vel)
		if pt.Pos != want {
			t.Errorf("particle %d at %+v, expected %+v", i, pt.Pos, want)
		}
		if !almostEqual(pt.Life, 0.01) {
			t.Errorf("particle %d life = %v, expected 0.01", i, pt.Life)
		}
	}
}

func TestPoolCompactionPreservesOrder(t *testing.T) {
	p := newTestPool()
	p.Emit(core.Vec2{}, core.ColorWhite, 4)

	// Kill the first and third particles; mark the rest to track order.
	p.items[0].MaxLife = 0.001
	p.items[1].MaxLife = 10
	p.items[1].Color = core.ColorBlue
	p.items[2].MaxLife = 0.001
	p.items[3].MaxLife = 10
	p.items[3].Color = core.ColorGreen

	p.Tick(0.01)

	if p.Count() != 2 {
		t.Fatalf("Count = %d, expected 2 survivors", p.Count())
	}
	live := p.Live()
	if live[0].Color != core.ColorBlue || live[1].Color != core.ColorGreen {
		t.Errorf("compaction reordered survivors: %v, %v", live[0].Color, live[1].Color)
	}
}

func TestPoolAllParticlesExpire(t *testing.T) {
	p := newTestPool()
	p.Emit(core.Vec2{X: 640, Y: 400}, core.ColorWhite, MaxParticles)

	// Max lifetime is 0.9s; one second of ticks clears the pool.
	for i := 0; i < 60; i++ {
		p.Tick(1.0 / 60.0)
	}
	if p.Count() != 0 {
		t.Errorf("pool should be empty after max lifetime, Count = %d", p.Count())
	}
}

func TestParticleAlpha(t *testing.T) {
	pt := Particle{Life: 0.25, MaxLife: 1.0}
	if !almostEqual(pt.Alpha(), 0.75) {
		t.Errorf("Alpha = %v, expected 0.75", pt.Alpha())
	}

	pt.Life = 1.0
	if pt.Alpha() != 0 {
		t.Errorf("expired particle alpha = %v, expected 0", pt.Alpha())
	}

	if (Particle{}).Alpha() != 0 {
		t.Error("zero particle should have zero alpha")
	}
}
