package geom

// ArcProfile maps normalized flight progress t in [0, 1] to a vertical offset.
type ArcProfile func(t float64) float64

// FlatArc keeps projectiles on the straight line between shooter and target.
func FlatArc(float64) float64 { return 0 }

// ParabolicArc peaks at height when t = 0.5 and is zero at both ends.
func ParabolicArc(height float64) ArcProfile {
	return func(t float64) float64 {
		t = Clamp01(t)
		return 4 * height * t * (1 - t)
	}
}
