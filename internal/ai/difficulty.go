package ai

import "fmt"

// Tier enumerates the opponent difficulty settings. The fixed tiers map
// to preset parameter tuples; Adaptive derives its parameters from match
// outcomes instead.
type Tier int

const (
	TierBeginner Tier = iota
	TierIntermediate
	TierExpert
	TierUnbeatable
	TierAdaptive
)

func (t Tier) String() string {
	switch t {
	case TierBeginner:
		return "beginner"
	case TierIntermediate:
		return "intermediate"
	case TierExpert:
		return "expert"
	case TierUnbeatable:
		return "unbeatable"
	case TierAdaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// ParseTier converts a user-facing tier name into a Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range []Tier{TierBeginner, TierIntermediate, TierExpert, TierUnbeatable, TierAdaptive} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Params is the tuple a tier fixes: how long the opponent waits before
// committing to a new target, how much prediction error it injects, and
// how fast its paddle moves relative to the base speed.
type Params struct {
	ReactionTime float64 // seconds
	ErrorScale   float64
	SpeedScale   float64
}

var tierPresets = [...]Params{
	TierBeginner:     {ReactionTime: 0.40, ErrorScale: 0.40, SpeedScale: 0.60},
	TierIntermediate: {ReactionTime: 0.25, ErrorScale: 0.22, SpeedScale: 0.80},
	TierExpert:       {ReactionTime: 0.12, ErrorScale: 0.08, SpeedScale: 1.00},
	TierUnbeatable:   {ReactionTime: 0.02, ErrorScale: 0.00, SpeedScale: 1.30},
}

// Adaptive controller constants: rolling window size, the win-rate
// hysteresis band, and the level step per update.
const (
	AdaptiveWindow  = 20
	AdaptiveStep    = 0.05
	AdaptiveRaiseAt = 0.6
	AdaptiveLowerAt = 0.4
)

// Difficulty wraps a tier together with the rolling-window state the
// Adaptive tier needs. One instance lives per match and persists across
// rounds; changing tiers resets it.
type Difficulty struct {
	tier     Tier
	level    float64
	outcomes []bool
}

// NewDifficulty creates difficulty state for the given tier. Adaptive
// starts halfway between the Beginner and Expert presets.
func NewDifficulty(tier Tier) *Difficulty {
	d := &Difficulty{tier: tier}
	if tier == TierAdaptive {
		d.level = 0.5
		d.outcomes = make([]bool, 0, AdaptiveWindow)
	}
	return d
}

// Tier returns the configured tier.
func (d *Difficulty) Tier() Tier {
	return d.tier
}

// Level returns the adaptive level in [0,1]. Fixed tiers report 0.
func (d *Difficulty) Level() float64 {
	return d.level
}

// Params returns the current parameter tuple. Fixed tiers read their
// preset; Adaptive interpolates between the Beginner and Expert presets
// by the current level.
func (d *Difficulty) Params() Params {
	if d.tier != TierAdaptive {
		return tierPresets[d.tier]
	}
	lo, hi := tierPresets[TierBeginner], tierPresets[TierExpert]
	return Params{
		ReactionTime: lerp(lo.ReactionTime, hi.ReactionTime, d.level),
		ErrorScale:   lerp(lo.ErrorScale, hi.ErrorScale, d.level),
		SpeedScale:   lerp(lo.SpeedScale, hi.SpeedScale, d.level),
	}
}

// RecordPointOutcome feeds a point result into the rolling window and
// nudges the level when the player's win rate leaves the hysteresis
// band. A simple proportional step with a dead band; no overshoot
// correction. Fixed tiers ignore outcomes.
func (d *Difficulty) RecordPointOutcome(playerWon bool) {
	if d.tier != TierAdaptive {
		return
	}

	if len(d.outcomes) == AdaptiveWindow {
		copy(d.outcomes, d.outcomes[1:])
		d.outcomes = d.outcomes[:AdaptiveWindow-1]
	}
	d.outcomes = append(d.outcomes, playerWon)

	wins := 0
	for _, won := range d.outcomes {
		if won {
			wins++
		}
	}
	rate := float64(wins) / float64(len(d.outcomes))

	switch {
	case rate > AdaptiveRaiseAt:
		d.level += AdaptiveStep
		if d.level > 1 {
			d.level = 1
		}
	case rate < AdaptiveLowerAt:
		d.level -= AdaptiveStep
		if d.level < 0 {
			d.level = 0
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
