package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders/sim"
)

// Snapshot contains the observable game state for replay checks.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	State       string
	Kills       int
	Deaths      int
	Shots       int
	PlayerAlive bool
	LastDeath   float64
	Enemies     int

	// Entities in draw order
	Entities []sim.View
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.world.Stats()
	p := g.world.Player()
	return Snapshot{
		Tick:        g.world.Clock().Tick(),
		Score:       g.score(),
		Lives:       g.lives,
		State:       g.state,
		Kills:       st.Kills,
		Deaths:      st.Deaths,
		Shots:       st.Shots,
		PlayerAlive: p.Alive,
		LastDeath:   p.LastDeath,
		Enemies:     g.world.Enemies().Value(),
		Entities:    g.world.Snapshot(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Deaths) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)  //#nosec G115 -- hash computation
	if snap.PlayerAlive {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.LastDeath)
	h = h*31 + uint64(snap.Enemies) //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Entities {
		h = h*31 + uint64(v.Handle)
		h = h*31 + uint64(v.Kind)   //#nosec G115 -- hash computation
		h = h*31 + uint64(v.Origin) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(v.X)
		h = h*31 + math.Float64bits(v.Y)
		h = h*31 + uint64(v.Frame) //#nosec G115 -- hash computation
	}

	return h
}
