package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the default configuration: the classic 1280x800 field at
// 60 ticks per second, first to ten points.
func Default() Config {
	return Config{
		Field: Field{
			Width:  1280,
			Height: 800,
		},
		Paddles: Paddles{
			Width:  25,
			Height: 200,
			Offset: 10,
			Speed:  12,
		},
		Ball: Ball{
			Radius:         20,
			InitialSpeed:   8,
			MaxSpeed:       15,
			SpeedIncrement: 0.2,
			WallBuffer:     2,
		},
		Gameplay: Gameplay{
			WinScore: 10,
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML, useful for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultYAML
}
