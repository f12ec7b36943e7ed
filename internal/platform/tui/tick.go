// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// FixedStep turns render ticks into a whole number of simulation steps.
// Time is counted in units of 1/(sim*render) seconds, so over any second of
// render ticks exactly sim steps are due and nothing drifts.
type FixedStep struct {
	sim    int
	render int
	acc    int
}

// NewFixedStep creates an accumulator stepping a simulation at simRate while
// rendering at renderRate. Non-positive rates fall back to 60.
func NewFixedStep(simRate, renderRate int) *FixedStep {
	f := &FixedStep{}
	f.Reset(simRate, renderRate)
	return f
}

// Reset sets the rates and drops any accumulated time.
func (f *FixedStep) Reset(simRate, renderRate int) {
	if simRate <= 0 {
		simRate = 60
	}
	if renderRate <= 0 {
		renderRate = 60
	}
	f.sim = simRate
	f.render = renderRate
	f.acc = 0
}

// Advance accounts for one render tick and returns the simulation steps due.
func (f *FixedStep) Advance() int {
	f.acc += f.sim
	n := f.acc / f.render
	f.acc -= n * f.render
	return n
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
