package ai

import (
	"math"

	"pongsim/internal/game"
	"pongsim/internal/geom"
)

const (
	// DefaultMaxBounces bounds the mirror-fold in the analytic
	// predictor against pathological inputs.
	DefaultMaxBounces = 5

	// DefaultForwardFrames bounds the step-simulated path.
	DefaultForwardFrames = 60

	// minPredictSpeed guards the time-to-reach division.
	minPredictSpeed = 1e-6
)

// Predictor estimates where the ball will cross a paddle's plane.
type Predictor struct {
	cfg game.Config
}

// NewPredictor creates a predictor for the given field.
func NewPredictor(cfg game.Config) Predictor {
	return Predictor{cfg: cfg}
}

// PredictInterceptY extrapolates the ball's center linearly to paddleX
// and folds the result back into the field by mirror reflection,
// bouncing at most maxBounces times. A ball that is not moving toward
// paddleX, or barely moving horizontally, yields its current Y; there is
// nothing meaningful to predict. Spin and acceleration are deliberately
// ignored; callers absorb the error through difficulty scaling.
func (p Predictor) PredictInterceptY(ball *game.Ball, paddleX float64, maxBounces int) float64 {
	center := ball.Center()
	vx := ball.Velocity.X

	if math.Abs(vx) < minPredictSpeed {
		return center.Y
	}
	if (paddleX-center.X)*vx <= 0 {
		return center.Y
	}

	t := (paddleX - center.X) / vx
	y := center.Y + ball.Velocity.Y*t

	height := p.cfg.FieldHeight
	for i := 0; i < maxBounces; i++ {
		if y < 0 {
			y = -y
			continue
		}
		if y > height {
			y = 2*height - y
			continue
		}
		break
	}
	if y < 0 {
		y = 0
	}
	if y > height {
		y = height
	}
	return y
}

// SimulateForwardPath step-simulates the ball's center at constant speed
// for up to frames ticks, reflecting off the top and bottom walls, and
// returns the visited positions. Higher fidelity than the analytic fold
// but bounded and still ignoring spin.
func (p Predictor) SimulateForwardPath(ball *game.Ball, frames int) []geom.Vector2 {
	pos := ball.Center()
	vel := ball.Velocity
	r := ball.Radius
	height := p.cfg.FieldHeight

	path := make([]geom.Vector2, 0, frames)
	for i := 0; i < frames; i++ {
		pos = pos.Add(vel)

		if pos.Y-r < 0 {
			pos.Y = 2*r - pos.Y
			vel.Y = -vel.Y
		}
		if pos.Y+r > height {
			pos.Y = 2*(height-r) - pos.Y
			vel.Y = -vel.Y
		}

		path = append(path, pos)
		if pos.X < 0 || pos.X > p.cfg.FieldWidth {
			break
		}
	}
	return path
}
