package game

import (
	"fmt"
	"math"
)

// Default simulation constants. Distances are in field units (pixels),
// velocities in units per tick at the nominal 60Hz step.
const (
	DefaultFieldWidth  = 800.0
	DefaultFieldHeight = 600.0

	DefaultBallRadius         = 8.0
	DefaultBallMaxSpeed       = 15.0
	DefaultMinHorizontalSpeed = 3.0

	DefaultWallDamping      = 0.9
	DefaultPaddleBounceGain = 1.05
	DefaultMaxBounceAngle   = 75.0 * math.Pi / 180.0
	DefaultEdgeKick         = 2.0
	DefaultSweetSpotBoost   = 1.2

	DefaultSpinConstant = 0.08
	DefaultSpinDecay    = 0.99

	DefaultPaddleWidth         = 14.0
	DefaultPaddleHeight        = 100.0
	DefaultPaddleMoveSpeed     = 10.0
	DefaultPaddleInterpolation = 0.18

	DefaultPointsToWin    = 10
	DefaultCountdownTicks = 60

	// FixedStep is the nominal duration of one tick in seconds.
	FixedStep = 1.0 / 60.0

	// MaxDelta caps the wall-clock delta fed to the clock, absorbing
	// stalls and debugger pauses.
	MaxDelta = 0.05
)

// Config carries every tunable the simulation reads. It is passed
// explicitly into constructors and tick calls; there are no package-level
// mutables, so concurrent matches cannot contaminate each other.
type Config struct {
	FieldWidth  float64
	FieldHeight float64

	BallRadius         float64
	BallMaxSpeed       float64
	MinHorizontalSpeed float64
	BallSpeedScale     float64 // multiplier in [0.7, 1.3]
	Gravity            float64 // vertical acceleration per tick, 0 disables

	WallDamping      float64
	PaddleBounceGain float64
	MaxBounceAngle   float64 // radians
	EdgeKick         float64
	SweetSpotBoost   float64

	SpinConstant float64
	SpinDecay    float64

	PaddleWidth         float64
	PaddleHeight        float64
	PaddleMoveSpeed     float64
	PaddleInterpolation float64

	// HumanSensitivity scales the human paddle's interpolation factor,
	// mapped from the user-facing [0,1] scalar into [0.5, 2.0].
	HumanSensitivity float64

	PointsToWin    int
	CountdownTicks int
}

// DefaultConfig returns a config with the standard field and physics
// constants, a neutral ball-speed scale, and neutral sensitivity.
func DefaultConfig() Config {
	return Config{
		FieldWidth:          DefaultFieldWidth,
		FieldHeight:         DefaultFieldHeight,
		BallRadius:          DefaultBallRadius,
		BallMaxSpeed:        DefaultBallMaxSpeed,
		MinHorizontalSpeed:  DefaultMinHorizontalSpeed,
		BallSpeedScale:      1.0,
		WallDamping:         DefaultWallDamping,
		PaddleBounceGain:    DefaultPaddleBounceGain,
		MaxBounceAngle:      DefaultMaxBounceAngle,
		EdgeKick:            DefaultEdgeKick,
		SweetSpotBoost:      DefaultSweetSpotBoost,
		SpinConstant:        DefaultSpinConstant,
		SpinDecay:           DefaultSpinDecay,
		PaddleWidth:         DefaultPaddleWidth,
		PaddleHeight:        DefaultPaddleHeight,
		PaddleMoveSpeed:     DefaultPaddleMoveSpeed,
		PaddleInterpolation: DefaultPaddleInterpolation,
		HumanSensitivity:    1.0,
		PointsToWin:         DefaultPointsToWin,
		CountdownTicks:      DefaultCountdownTicks,
	}
}

// Validate rejects degenerate configurations before they can reach a
// tick. Malformed field dimensions fail fast here, never mid-simulation.
func (c Config) Validate() error {
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return fmt.Errorf("field dimensions must be positive, got %gx%g", c.FieldWidth, c.FieldHeight)
	}
	if c.BallRadius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %g", c.BallRadius)
	}
	if c.PaddleHeight <= 0 || c.PaddleHeight >= c.FieldHeight {
		return fmt.Errorf("paddle height must be in (0, %g), got %g", c.FieldHeight, c.PaddleHeight)
	}
	if c.BallMaxSpeed <= 0 || c.MinHorizontalSpeed <= 0 {
		return fmt.Errorf("ball speeds must be positive")
	}
	if c.MinHorizontalSpeed > c.BallMaxSpeed {
		return fmt.Errorf("minimum horizontal speed %g exceeds max speed %g", c.MinHorizontalSpeed, c.BallMaxSpeed)
	}
	if c.BallSpeedScale < 0.7 || c.BallSpeedScale > 1.3 {
		return fmt.Errorf("ball speed scale must be in [0.7, 1.3], got %g", c.BallSpeedScale)
	}
	if c.HumanSensitivity < 0.5 || c.HumanSensitivity > 2.0 {
		return fmt.Errorf("sensitivity must be in [0.5, 2.0], got %g", c.HumanSensitivity)
	}
	if c.PointsToWin < 1 {
		return fmt.Errorf("points to win must be at least 1, got %d", c.PointsToWin)
	}
	return nil
}

// BallSpeedScaleFrom maps the user-facing [0,1] ball-speed scalar into
// the internal [0.7, 1.3] multiplier range. The mapping constants are
// part of the contract.
func BallSpeedScaleFrom(s float64) float64 {
	return 0.7 + 0.6*clamp01(s)
}

// SensitivityFrom maps the user-facing [0,1] paddle-sensitivity scalar
// into the internal [0.5, 2.0] range.
func SensitivityFrom(s float64) float64 {
	return 0.5 + 1.5*clamp01(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
