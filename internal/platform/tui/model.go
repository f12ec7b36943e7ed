package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// holdConfigurer is implemented by games that tune key hold tracking.
type holdConfigurer interface {
	HoldDuration() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	holds     *HoldTracker
	steps     *FixedStep
	edges     core.InputFrame // One-shot actions for the next tick
	gameState core.GameState
	clock     func() time.Time
	quitting  bool
	runSaved  bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
		holds:  NewHoldTracker(DefaultHoldWindow),
		steps:  NewFixedStep(cfg.TickRate, cfg.TickRate),
		edges:  core.NewInputFrame(),
		clock:  time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	return tickCmd(m.config.TickRate)
}

// resetGame resets the game and picks up its hold window and simulation rate.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.holds.Release()
	if hc, ok := m.game.(holdConfigurer); ok {
		*m.holds = *NewHoldTracker(time.Duration(hc.HoldDuration()) * time.Millisecond)
	}

	simRate := m.config.TickRate
	if fs, ok := m.game.(registry.FixedStepper); ok {
		simRate = fs.SimRate()
	}
	m.steps.Reset(simRate, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeld(action):
		m.holds.Press(action, m.clock())
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only applies after game over
	default:
		m.edges.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.resetGame()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.edges.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.edges.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Edges wait for the next render tick that runs a step
	n := m.steps.Advance()
	for i := 0; i < n; i++ {
		frame := core.NewInputFrame()
		if i == 0 {
			frame = m.edges.Clone()
			m.edges.Clear()
		}
		m.holds.Apply(&frame, now)

		result := m.game.Step(frame)
		m.gameState = result.State

		if m.gameState.GameOver {
			m.saveRun()
			break
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the score and run statistics once per run.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	m.runSaved = true

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	sr, ok := m.game.(registry.StatsReporter)
	if !ok {
		return
	}
	st := sr.RunStats()
	if st.Ticks == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Kills:  st.Kills,
		Deaths: st.Deaths,
		Shots:  st.Shots,
		Ticks:  int64(st.Ticks), //#nosec G115 -- tick count fits in int64
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
