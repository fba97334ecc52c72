package game

import "math"

// Clock drives deterministic fixed-step ticks from variable wall-clock
// deltas using the accumulator pattern.
type Clock struct {
	step        float64
	accumulator float64
	timeScale   float64
	lockedScale bool
}

// NewClock creates a clock with the nominal 1/60s step.
func NewClock() *Clock {
	return &Clock{step: FixedStep, timeScale: 1}
}

// Advance feeds a wall-clock delta (seconds) into the accumulator and
// returns how many fixed steps the caller must run. Non-finite or
// negative deltas are discarded; deltas above MaxDelta are clamped so a
// stall cannot produce a tick burst.
//
// The time scale is recomputed here from the raw delta as
// clamp(60*dt, 0.5, 2.0). This smooths uneven frame delivery at the cost
// of coupling tick results to wall time; tests that need bit-exact
// replay pin it with LockTimeScale.
func (c *Clock) Advance(dt float64) int {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}

	if !c.lockedScale {
		c.timeScale = clampScale(60 * dt)
	}

	c.accumulator += dt
	steps := 0
	for c.accumulator >= c.step {
		c.accumulator -= c.step
		steps++
	}
	return steps
}

// TimeScale returns the current frame-delivery compensation factor.
func (c *Clock) TimeScale() float64 {
	return c.timeScale
}

// LockTimeScale pins the time scale to a fixed value, detaching the
// simulation from wall time for deterministic replay.
func (c *Clock) LockTimeScale(s float64) {
	c.timeScale = clampScale(s)
	c.lockedScale = true
}

func clampScale(s float64) float64 {
	if s < 0.5 {
		return 0.5
	}
	if s > 2.0 {
		return 2.0
	}
	return s
}
