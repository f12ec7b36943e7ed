package sim

import "math"

// Clock is the fixed-timestep time source. Time advances only through
// Advance, so motion is independent of how fast the platform renders.
type Clock struct {
	tick uint64
	rate int
}

// NewClock creates a clock running at rate ticks per second.
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	return &Clock{rate: rate}
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() {
	c.tick++
}

// Tick returns the number of ticks elapsed since start.
func (c *Clock) Tick() uint64 {
	return c.tick
}

// Rate returns ticks per second.
func (c *Clock) Rate() int {
	return c.rate
}

// Now returns seconds since start. Whole seconds are exact.
func (c *Clock) Now() float64 {
	return float64(c.tick) / float64(c.rate)
}

// Delta returns the constant per-tick step in seconds.
func (c *Clock) Delta() float64 {
	return 1 / float64(c.rate)
}

// Gate is a periodic trigger that fires once every period ticks.
// Gates are independent counters; two gates never share state.
type Gate struct {
	period  int
	elapsed int
}

// NewGate creates a gate firing every interval seconds at the given tick rate.
// Intervals shorter than one tick fire every tick.
func NewGate(interval float64, rate int) *Gate {
	g := &Gate{}
	g.SetInterval(interval, rate)
	return g
}

// SetInterval changes the gate period. Ticks already accumulated are kept,
// so shortening the interval may fire the gate on the next Step.
func (g *Gate) SetInterval(interval float64, rate int) {
	g.period = ticksFor(interval, rate)
}

// Step accumulates one tick and reports whether the gate fired.
func (g *Gate) Step() bool {
	g.elapsed++
	if g.elapsed < g.period {
		return false
	}
	g.elapsed = 0
	return true
}

// ticksFor converts seconds to a whole number of ticks, at least one.
func ticksFor(seconds float64, rate int) int {
	n := int(math.Round(seconds * float64(rate)))
	if n < 1 {
		n = 1
	}
	return n
}
