// pkg/geom/vec.go
package geom

import "math"

// Vec2 is a point or direction on the battlefield plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Lerp interpolates between a and b. t is not clamped.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// MoveTowards steps from toward to by at most maxStep without overshooting.
func MoveTowards(from, to Vec2, maxStep float64) Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= maxStep || dist < 1e-9 {
		return to
	}
	return from.Add(d.Scale(maxStep / dist))
}
