package geom

import "math"

// Vector2 is a 2D vector with float64 components. Methods return new
// values; nothing mutates the receiver.
type Vector2 struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value
func (v Vector2) Scale(factor float64) Vector2 {
	return Vector2{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2) Normalize() Vector2 {
	length := v.Length()
	if length == 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / length, Y: v.Y / length}
}

// Dot returns the dot product of two vectors
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// ClampLength returns the vector scaled down so its magnitude does not
// exceed limit. Vectors already within the limit come back unchanged.
func (v Vector2) ClampLength(limit float64) Vector2 {
	if limit <= 0 {
		return Vector2{}
	}
	lengthSq := v.X*v.X + v.Y*v.Y
	if lengthSq == 0 || lengthSq <= limit*limit {
		return v
	}
	return v.Scale(limit / math.Sqrt(lengthSq))
}

// Angle returns the angle of the vector in radians
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
