package game

import (
	"math"
	"math/rand"

	"pongsim/internal/geom"
)

const (
	// ServeSpeedFactor scales the minimum horizontal speed into the
	// serve speed.
	ServeSpeedFactor = 1.5

	// TrailCapacity bounds the position trail kept for renderers.
	TrailCapacity = 12
)

// Ball specializes Body with spin, a speed envelope and a bounded
// position trail. The trail exists purely for presentation; the
// simulation never reads it.
type Ball struct {
	Body
	Radius          float64
	Spin            float64
	MaxSpeed        float64
	SpeedMultiplier float64

	trail []geom.Vector2
}

// NewBall creates a ball at rest in the center of the field.
func NewBall(cfg Config) *Ball {
	b := &Ball{
		Radius:          cfg.BallRadius,
		MaxSpeed:        cfg.BallMaxSpeed,
		SpeedMultiplier: cfg.BallSpeedScale,
		trail:           make([]geom.Vector2, 0, TrailCapacity),
	}
	b.Body = NewBody(geom.Vector2{
		X: cfg.FieldWidth/2 - cfg.BallRadius,
		Y: cfg.FieldHeight/2 - cfg.BallRadius,
	}, 2*cfg.BallRadius, 2*cfg.BallRadius)
	return b
}

// Center returns the ball's center point.
func (b *Ball) Center() geom.Vector2 {
	return geom.Vector2{X: b.Position.X + b.Radius, Y: b.Position.Y + b.Radius}
}

// Integrate advances the ball by one step. Spin curves the ball before
// the base integration; the speed clamp can pull |vx| under the floor,
// so the floor is re-applied last.
func (b *Ball) Integrate(cfg Config, dt, timeScale float64) {
	b.Acceleration.Y = cfg.Gravity + b.Spin*cfg.SpinConstant*b.SpeedMultiplier

	b.Body.Integrate(dt, timeScale)

	b.Spin *= cfg.SpinDecay
	b.Velocity = b.Velocity.ClampLength(b.MaxSpeed * b.SpeedMultiplier)
	b.FloorHorizontalSpeed(cfg.MinHorizontalSpeed)

	b.pushTrail(b.Center())
}

// FloorHorizontalSpeed restores the minimum horizontal speed, keeping
// the current travel direction.
func (b *Ball) FloorHorizontalSpeed(minSpeed float64) {
	if math.Abs(b.Velocity.X) >= minSpeed {
		return
	}
	if b.Velocity.X < 0 {
		b.Velocity.X = -minSpeed
	} else {
		b.Velocity.X = minSpeed
	}
}

// Reset centers the ball and launches it at a randomized serve angle
// inside a 45-degree cone around horizontal. serveRight launches toward
// the right paddle; the vertical sign is randomized independently.
func (b *Ball) Reset(cfg Config, serveRight bool, rng *rand.Rand) {
	b.Position = geom.Vector2{
		X: cfg.FieldWidth/2 - b.Radius,
		Y: cfg.FieldHeight/2 - b.Radius,
	}

	speed := ServeSpeedFactor * cfg.MinHorizontalSpeed
	angle := (45 + 90*rng.Float64()) * math.Pi / 180

	vx := speed * math.Sin(angle)
	vy := speed * math.Abs(math.Cos(angle))
	if !serveRight {
		vx = -vx
	}
	if rng.Intn(2) == 0 {
		vy = -vy
	}

	b.Velocity = geom.Vector2{X: vx, Y: vy}
	b.Acceleration = geom.Vector2{}
	b.Spin = 0
	b.trail = b.trail[:0]
	b.SyncBounds()
}

// Trail returns the recent center positions, oldest first.
func (b *Ball) Trail() []geom.Vector2 {
	return b.trail
}

func (b *Ball) pushTrail(pos geom.Vector2) {
	if len(b.trail) == TrailCapacity {
		copy(b.trail, b.trail[1:])
		b.trail = b.trail[:TrailCapacity-1]
	}
	b.trail = append(b.trail, pos)
}
