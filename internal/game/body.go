package game

import "pongsim/internal/geom"

// Body is the base kinematic state shared by the ball and the paddles.
// Position is the top-left corner of the bounding box. Velocities are in
// field units per tick.
type Body struct {
	Position     geom.Vector2
	Velocity     geom.Vector2
	Acceleration geom.Vector2
	Mass         float64
	Restitution  float64
	Width        float64
	Height       float64

	bounds geom.Rect
}

// NewBody creates a body at the given position with the given size.
func NewBody(pos geom.Vector2, w, h float64) Body {
	b := Body{Position: pos, Mass: 1, Restitution: 1, Width: w, Height: h}
	b.SyncBounds()
	return b
}

// Integrate advances the body by one Euler step. dt is measured in ticks
// (1.0 = one fixed step); timeScale is the frame-delivery compensation
// factor computed by the clock.
func (b *Body) Integrate(dt, timeScale float64) {
	scaled := dt * timeScale
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(scaled))
	b.Position = b.Position.Add(b.Velocity.Scale(scaled))
	b.SyncBounds()
}

// SyncBounds recomputes the bounding box from the current position.
// Collision code reads Bounds, so every position mutation must be
// followed by a sync before the next collision pass.
func (b *Body) SyncBounds() {
	b.bounds = geom.NewRect(b.Position, b.Width, b.Height)
}

// Bounds returns the current bounding box.
func (b *Body) Bounds() geom.Rect {
	return b.bounds
}
