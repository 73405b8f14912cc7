// Package config provides YAML-based configuration loading for the game,
// with an embedded default that ships inside the binary.
package config

import "github.com/dbismaya/phantom-pong/internal/core"

// Config is the on-disk configuration shape.
type Config struct {
	Field    Field    `yaml:"field"`
	Paddles  Paddles  `yaml:"paddles"`
	Ball     Ball     `yaml:"ball"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Field defines the virtual playfield. The simulation always runs in these
// units; the renderer scales them to the terminal.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Paddles defines paddle geometry and movement.
type Paddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"`
	Speed  float64 `yaml:"speed"`
}

// Ball defines ball geometry and the speed progression.
type Ball struct {
	Radius         float64 `yaml:"radius"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	WallBuffer     float64 `yaml:"wall_buffer"`
}

// Gameplay defines match rules and timing.
type Gameplay struct {
	WinScore int `yaml:"win_score"`
	TickRate int `yaml:"tick_rate"`
}

// ToCore flattens the configuration into the simulation's runtime form.
// Seed is a runtime concern and stays zero here; callers set it from flags
// or the clock.
func (c Config) ToCore() core.Config {
	return core.Config{
		FieldW:         c.Field.Width,
		FieldH:         c.Field.Height,
		PaddleW:        c.Paddles.Width,
		PaddleH:        c.Paddles.Height,
		PaddleOffset:   c.Paddles.Offset,
		PaddleSpeed:    c.Paddles.Speed,
		BallRadius:     c.Ball.Radius,
		BallSpeed:      c.Ball.InitialSpeed,
		MaxBallSpeed:   c.Ball.MaxSpeed,
		SpeedIncrement: c.Ball.SpeedIncrement,
		WallBuffer:     c.Ball.WallBuffer,
		WinScore:       c.Gameplay.WinScore,
		TickRate:       c.Gameplay.TickRate,
	}
}
