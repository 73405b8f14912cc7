package core

// Config is the immutable simulation configuration passed to match
// initialization. Physics constants are expressed in field units per tick and
// are tuned for the default tick rate; the renderer projects the field onto
// whatever terminal size is available.
type Config struct {
	FieldW float64 // Playfield width in field units
	FieldH float64 // Playfield height in field units

	PaddleW      float64 // Paddle width
	PaddleH      float64 // Paddle height
	PaddleOffset float64 // Paddle distance from the field edge
	PaddleSpeed  float64 // Paddle displacement per tick while a key is held

	BallRadius     float64
	BallSpeed      float64 // Horizontal serve speed before the multiplier
	MaxBallSpeed   float64 // Horizontal speed cap before the multiplier
	SpeedIncrement float64 // Horizontal speed gained per paddle hit
	WallBuffer     float64 // Reposition margin after a wall bounce

	WinScore int // Points needed to win the match

	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns the original game tuning: a 1280x800 field at 60
// ticks per second.
func DefaultConfig() Config {
	return Config{
		FieldW:         1280,
		FieldH:         800,
		PaddleW:        25,
		PaddleH:        200,
		PaddleOffset:   10,
		PaddleSpeed:    12,
		BallRadius:     20,
		BallSpeed:      8,
		MaxBallSpeed:   15,
		SpeedIncrement: 0.2,
		WallBuffer:     2,
		WinScore:       10,
		TickRate:       60,
		Seed:           0,
	}
}
