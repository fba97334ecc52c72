package game

import "pongsim/internal/geom"

// Side identifies which half of the field a paddle defends.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// HitFlashTicks is how long a paddle stays highlighted after a contact.
const HitFlashTicks = 10

// Paddle specializes Body with target-seeking movement. Both the AI and
// the human paddle move by setting TargetY and letting Integrate apply a
// rate-limited approach; nothing sets Position.Y directly.
type Paddle struct {
	Body
	Side                Side
	MoveSpeed           float64
	InterpolationFactor float64
	IsAIControlled      bool
	TargetY             float64

	flashTicks int
}

// NewPaddle creates a paddle on the given side, vertically centered.
func NewPaddle(cfg Config, side Side, ai bool) *Paddle {
	x := 2 * cfg.PaddleWidth
	if side == SideRight {
		x = cfg.FieldWidth - 3*cfg.PaddleWidth
	}
	y := (cfg.FieldHeight - cfg.PaddleHeight) / 2

	interp := cfg.PaddleInterpolation
	if !ai {
		interp *= cfg.HumanSensitivity
		if interp > 1 {
			interp = 1
		}
	}

	p := &Paddle{
		Side:                side,
		MoveSpeed:           cfg.PaddleMoveSpeed,
		InterpolationFactor: interp,
		IsAIControlled:      ai,
		TargetY:             y,
	}
	p.Body = NewBody(geom.Vector2{X: x, Y: y}, cfg.PaddleWidth, cfg.PaddleHeight)
	return p
}

// SetTarget sets the desired top-Y position, clamped into the field.
func (p *Paddle) SetTarget(y, fieldHeight float64) {
	maxY := fieldHeight - p.Height
	if y < 0 {
		y = 0
	}
	if y > maxY {
		y = maxY
	}
	p.TargetY = y
}

// Integrate moves the paddle toward its target, limited per step by
// MoveSpeed, and keeps it inside the field.
func (p *Paddle) Integrate(fieldHeight, dt, timeScale float64) {
	step := (p.TargetY - p.Position.Y) * p.InterpolationFactor
	limit := p.MoveSpeed * timeScale * dt
	if step > limit {
		step = limit
	}
	if step < -limit {
		step = -limit
	}
	p.Position.Y += step

	maxY := fieldHeight - p.Height
	if p.Position.Y < 0 {
		p.Position.Y = 0
	}
	if p.Position.Y > maxY {
		p.Position.Y = maxY
	}
	p.SyncBounds()

	if p.flashTicks > 0 {
		p.flashTicks--
	}
}

// TriggerFlash starts the hit highlight countdown.
func (p *Paddle) TriggerFlash() {
	p.flashTicks = HitFlashTicks
}

// Flashing reports whether the paddle is in its post-hit highlight.
func (p *Paddle) Flashing() bool {
	return p.flashTicks > 0
}

// CenterY returns the paddle's vertical center.
func (p *Paddle) CenterY() float64 {
	return p.Position.Y + p.Height/2
}
