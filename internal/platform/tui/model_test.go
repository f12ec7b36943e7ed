package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame records the frames it is stepped with.
type stubGame struct {
	resets   int
	frames   []core.InputFrame
	state    core.GameState
	stats    core.RunStats
	holdMs   int
	resizedW int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.state = core.GameState{}
	g.stats = core.RunStats{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	g.stats.Ticks++
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) RunStats() core.RunStats { return g.stats }
func (g *stubGame) HoldDuration() int       { return g.holdMs }
func (g *stubGame) Resize(w, _ int)         { g.resizedW = w }

func newTestModel(g *stubGame, store *storage.Store) (Model, *time.Time) {
	now := time.Unix(5000, 0)
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.clock = func() time.Time { return now }
	m.Init()
	return m, &now
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelHeldKeysSpanTicks(t *testing.T) {
	g := &stubGame{holdMs: 100}
	m, now := newTestModel(g, nil)

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg(" "))

	// Within the hold window both intents persist across ticks
	m = update(t, m, TickMsg(*now))
	m = update(t, m, TickMsg(now.Add(50*time.Millisecond)))
	// After the window they are released
	m = update(t, m, TickMsg(now.Add(150*time.Millisecond)))

	if len(g.frames) != 3 {
		t.Fatalf("stepped %d times, expected 3", len(g.frames))
	}
	for i := 0; i < 2; i++ {
		if !g.frames[i].Has(core.ActionLeft) || !g.frames[i].Has(core.ActionFire) {
			t.Errorf("frame %d = %v, expected left and fire held", i, g.frames[i].Actions)
		}
	}
	if g.frames[2].Has(core.ActionLeft) || g.frames[2].Has(core.ActionFire) {
		t.Errorf("frame 2 = %v, expected keys released", g.frames[2].Actions)
	}
}

func TestModelEdgesLastOneTick(t *testing.T) {
	g := &stubGame{}
	m, now := newTestModel(g, nil)

	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(*now))
	m = update(t, m, TickMsg(*now))

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("pause should reach the first tick")
	}
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause should not repeat on the next tick")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &stubGame{}
	m, now := newTestModel(g, nil)

	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg(*now))
	if g.frames[0].Has(core.ActionRestart) || g.resets != 1 {
		t.Error("restart must be ignored while playing")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg(*now))
	m = update(t, m, keyMsg("r"))
	m = update(t, m, TickMsg(*now))
	if g.resets != 2 {
		t.Errorf("resets = %d, expected a restart after game over", g.resets)
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m, now := newTestModel(g, store)

	m = update(t, m, TickMsg(*now))
	g.state = core.GameState{Score: 40, GameOver: true}
	g.stats.Kills = 4
	g.stats.Deaths = 3
	g.stats.Shots = 12
	m = update(t, m, TickMsg(*now))
	m = update(t, m, TickMsg(*now)) // saved only once

	high, _ := store.HighScore("stub")
	if high != 40 {
		t.Errorf("HighScore = %d, expected 40", high)
	}
	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 {
		t.Fatalf("runs = %d, expected 1", len(runs))
	}
	if runs[0].Kills != 4 || runs[0].Deaths != 3 || runs[0].Shots != 12 || runs[0].Ticks != 2 {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	// Quitting after the save does not record the run twice
	m = update(t, m, keyMsg("q"))
	runs, _ = store.RecentRuns("stub", 10)
	if len(runs) != 1 || !m.IsQuitting() {
		t.Errorf("runs = %d after quit, quitting = %v", len(runs), m.IsQuitting())
	}
}

func TestModelSavesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m, now := newTestModel(g, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(*now))
	}
	m = update(t, m, keyMsg("ctrl+c"))

	runs, _ := store.RecentRuns("stub", 10)
	if len(runs) != 1 || runs[0].Ticks != 5 {
		t.Errorf("runs = %+v, expected one 5-tick run", runs)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	g := &stubGame{}
	m, _ := newTestModel(g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resizedW != 100 {
		t.Errorf("resizedW = %d, expected 100", g.resizedW)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not restart", g.resets)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() should render the game")
	}
}

// fixedStub is a stubGame with its own simulation rate.
type fixedStub struct {
	*stubGame
	rate int
}

func (g fixedStub) SimRate() int { return g.rate }

func newRateModel(g registry.Game, renderRate int) (Model, *time.Time) {
	now := time.Unix(5000, 0)
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: renderRate, Seed: 1})
	m.clock = func() time.Time { return now }
	m.Init()
	return m, &now
}

func TestFixedStep(t *testing.T) {
	tests := []struct {
		name      string
		sim       int
		render    int
		perSecond []int // steps for the first render ticks
	}{
		{"equal rates", 60, 60, []int{1, 1, 1}},
		{"half render rate", 60, 30, []int{2, 2, 2}},
		{"double render rate", 60, 120, []int{0, 1, 0, 1}},
		{"uneven", 60, 25, []int{2, 2, 3, 2, 3}},
		{"defaults", 0, 0, []int{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFixedStep(tc.sim, tc.render)
			for i, want := range tc.perSecond {
				if got := f.Advance(); got != want {
					t.Errorf("tick %d: Advance() = %d, expected %d", i, got, want)
				}
			}
		})
	}
}

func TestFixedStepNoDrift(t *testing.T) {
	for _, render := range []int{24, 25, 30, 60, 75, 144} {
		f := NewFixedStep(60, render)
		total := 0
		for i := 0; i < render*10; i++ {
			total += f.Advance()
		}
		if total != 600 {
			t.Errorf("render %d: %d steps over 10 s, expected 600", render, total)
		}
	}
}

func TestModelStepsAtSimRate(t *testing.T) {
	g := fixedStub{stubGame: &stubGame{holdMs: 100}, rate: 60}
	m, now := newRateModel(g, 30)

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(*now))

	if len(g.frames) != 2 {
		t.Fatalf("stepped %d times on one 30 fps tick, expected 2", len(g.frames))
	}
	for i, f := range g.frames {
		if !f.Has(core.ActionLeft) {
			t.Errorf("frame %d: left should stay held", i)
		}
	}
	if !g.frames[0].Has(core.ActionPause) || g.frames[1].Has(core.ActionPause) {
		t.Error("pause should reach only the first step of the tick")
	}
}

func TestModelEdgeWaitsForStep(t *testing.T) {
	g := fixedStub{stubGame: &stubGame{}, rate: 60}
	m, now := newRateModel(g, 120)

	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg(*now))
	if len(g.frames) != 0 {
		t.Fatalf("stepped %d times on the first 120 fps tick, expected 0", len(g.frames))
	}

	m = update(t, m, TickMsg(*now))
	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionPause) {
		t.Errorf("frames = %d, expected one step carrying the pause", len(g.frames))
	}
}

func TestModelKeepsInvadersTiming(t *testing.T) {
	for _, render := range []int{25, 30, 60} {
		g := invaders.New()
		m, now := newRateModel(g, render)

		// One second of render ticks
		for i := 0; i < render; i++ {
			m = update(t, m, TickMsg(*now))
		}

		if tick := g.World().Clock().Tick(); tick != 60 {
			t.Errorf("render %d: sim at tick %d after one second, expected 60", render, tick)
		}
		if g.World().Enemies().Value() != 1 {
			t.Errorf("render %d: enemy should spawn on the 1 s gate", render)
		}
	}
}
