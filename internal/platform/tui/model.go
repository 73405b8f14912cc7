package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbismaya/phantom-pong/internal/core"
	"github.com/dbismaya/phantom-pong/internal/game"
	"github.com/dbismaya/phantom-pong/internal/storage"
)

// Ambience controls the looping splash-screen sound. The audio engine
// implements it; a nil ambience disables it.
type Ambience interface {
	PlayAmbience()
	StopAmbience()
}

// Model is the Bubble Tea model driving one match session.
type Model struct {
	match    *game.Match
	screen   *core.Screen
	store    *storage.Store
	ambience Ambience
	keys     *KeyMapper

	input      core.InputFrame
	state      game.State
	tickRate   int
	matchStart uint64 // tick at which the current match began
	matchSaved bool
	altScreen  bool
	quitting   bool
}

// NewModel creates a model for the given match. store and ambience may be
// nil; persistence and splash sound are skipped then.
func NewModel(match *game.Match, store *storage.Store, ambience Ambience) Model {
	cfg := match.Config()
	return Model{
		match:     match,
		screen:    core.NewScreen(80, 24),
		store:     store,
		ambience:  ambience,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		state:     match.State(),
		tickRate:  cfg.TickRate,
		altScreen: true,
	}
}

// Init starts the tick loop. The match opens on the splash screen, so the
// ambience starts right away.
func (m Model) Init() tea.Cmd {
	if m.ambience != nil {
		m.ambience.PlayAmbience()
	}
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.input.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs in field units; a resize only changes the
		// projection, never the match state.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		if m.ambience != nil {
			m.ambience.StopAmbience()
		}
		return m, tea.Quit
	}

	// Fullscreen is a terminal concern, handled here rather than in the
	// simulation.
	if action == core.ActionFullscreen {
		m.altScreen = !m.altScreen
		if m.altScreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step and reacts to phase changes.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.state
	result := m.match.Step(m.input)
	m.state = result.State
	m.input.Clear()

	m.syncAmbience(prev.Phase, m.state.Phase)

	// A match (re)starts whenever we enter Playing from a menu phase.
	if m.state.Phase == game.PhasePlaying && prev.Phase != game.PhasePlaying && prev.Phase != game.PhasePaused {
		m.matchStart = m.match.Tick()
		m.matchSaved = false
	}

	if m.state.Phase == game.PhaseGameOver && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	return m, tickCmd(m.tickRate)
}

// syncAmbience starts the splash pad when entering the splash screen and
// stops it on the way out.
func (m Model) syncAmbience(prev, next game.Phase) {
	if m.ambience == nil || prev == next {
		return
	}
	if next == game.PhaseSplash {
		m.ambience.PlayAmbience()
	} else if prev == game.PhaseSplash {
		m.ambience.StopAmbience()
	}
}

// saveMatch persists the finished match. Best-effort: a storage failure
// never interrupts play.
func (m Model) saveMatch() {
	if m.store == nil {
		return
	}

	winner := "left"
	if m.state.Winner == core.Player2 {
		winner = "right"
	}
	duration := 0
	if m.tickRate > 0 {
		duration = int((m.match.Tick() - m.matchStart) / uint64(m.tickRate))
	}

	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveMatch(storage.MatchResult{
		Mode:         m.state.Mode.String(),
		ScoreLeft:    m.state.ScoreLeft,
		ScoreRight:   m.state.ScoreRight,
		Winner:       winner,
		Multiplier:   m.state.Multiplier,
		DurationSecs: duration,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	return RenderScreen(m.screen)
}

// Options bundles the dependencies for a local terminal session.
type Options struct {
	Config   core.Config
	Store    *storage.Store
	Sound    game.Sound
	Ambience Ambience
}

// Run starts a local Bubble Tea session and blocks until the player quits.
func Run(opts Options) error {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	match := game.NewMatch(cfg, opts.Sound)
	model := NewModel(match, opts.Store, opts.Ambience)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click to confirm on the splash screen
	)

	_, err := p.Run()
	return err
}
