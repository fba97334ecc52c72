package geom

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect builds a rectangle from a top-left position and a size.
func NewRect(pos Vector2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Overlaps reports whether two rectangles intersect.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}
