package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveTowards(t *testing.T) {
	from := Vec2{0, 0}
	to := Vec2{10, 0}

	assert.Equal(t, Vec2{3, 0}, MoveTowards(from, to, 3))
	assert.Equal(t, to, MoveTowards(from, to, 25), "must not overshoot")
	assert.Equal(t, to, MoveTowards(to, to, 1))
}

func TestLerpAndClamp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{4, 8}
	assert.Equal(t, Vec2{2, 4}, Lerp(a, b, 0.5))
	assert.Equal(t, 0.0, Clamp01(-2))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.InDelta(t, 5.0, Distance(Vec2{0, 0}, Vec2{3, 4}), 1e-9)
}

func TestParabolicArc(t *testing.T) {
	arc := ParabolicArc(2)
	assert.InDelta(t, 0, arc(0), 1e-9)
	assert.InDelta(t, 2, arc(0.5), 1e-9)
	assert.InDelta(t, 0, arc(1), 1e-9)
	assert.InDelta(t, 0, arc(1.7), 1e-9, "progress is clamped")
	assert.Equal(t, 0.0, FlatArc(0.3))
}
