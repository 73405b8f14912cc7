// Package audio synthesizes the game's sound effects with beep. All cues are
// generated oscillators; no sample files are shipped or loaded.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Engine plays game sound effects through the system speaker. It implements
// the simulation's Sound interface; all methods are safe for concurrent use
// and become no-ops until Initialize succeeds.
type Engine struct {
	mu               sync.Mutex
	mixer            *beep.Mixer
	ambienceStreamer *beep.Ctrl
	initialized      bool
}

// NewEngine creates an engine. Call Initialize before playing anything.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call twice.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Cleanup silences all sounds. beep has no speaker Close; clearing the mixer
// is enough to stop output.
func (e *Engine) Cleanup() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	if e.ambienceStreamer != nil {
		e.ambienceStreamer.Paused = true
	}
	e.mixer.Clear()
	e.initialized = false
}

// PaddleHit plays a short percussive blip.
func (e *Engine) PaddleHit() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*60), NewBlipGenerator(sampleRate, 880))
	e.mixer.Add(streamer)
}

// Score plays a two-tone descending chime.
func (e *Engine) Score() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*350), NewChimeGenerator(sampleRate))
	e.mixer.Add(streamer)
}

// PlayAmbience starts the looping splash-screen pad. Restart requests while
// it is already playing are ignored.
func (e *Engine) PlayAmbience() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if e.ambienceStreamer != nil && !e.ambienceStreamer.Paused {
		return
	}

	streamer := beep.Loop(-1, NewAmbienceGenerator(sampleRate))
	ctrl := &beep.Ctrl{Streamer: streamer, Paused: false}
	e.ambienceStreamer = ctrl
	e.mixer.Add(ctrl)
}

// StopAmbience pauses the splash-screen pad.
func (e *Engine) StopAmbience() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ambienceStreamer != nil {
		e.ambienceStreamer.Paused = true
	}
}

// BlipGenerator generates a short sine ping with a fast exponential decay.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBlipGenerator creates a blip at the given frequency.
func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 60)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a two-tone descending chime for scored points.
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator.
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	split := g.sr.N(time.Millisecond * 150)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// First tone, then a lower one after 150ms.
		freq := 660.0
		if g.pos >= split {
			freq = 440.0
		}

		envelope := math.Exp(-t * 6)
		sample := 0.0
		sample += 0.25 * math.Sin(2*math.Pi*freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*freq*2*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// AmbienceGenerator generates a slow two-oscillator pad for the splash
// screen, cycling over four seconds.
type AmbienceGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewAmbienceGenerator creates the splash pad generator.
func NewAmbienceGenerator(sr beep.SampleRate) *AmbienceGenerator {
	return &AmbienceGenerator{
		sr:      sr,
		samples: sr.N(time.Second * 4),
	}
}

func (g *AmbienceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		swell := 0.5 + 0.5*math.Sin(cyclePos*math.Pi*2)

		sample := 0.0
		sample += 0.08 * math.Sin(2*math.Pi*110*t)
		sample += 0.05 * math.Sin(2*math.Pi*165*t)
		sample *= swell

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *AmbienceGenerator) Err() error {
	return nil
}
