package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-wild-friends/internal/config"
	"go-wild-friends/pkg/geom"
)

func TestWorldScreenRoundTrip(t *testing.T) {
	x, y := worldToScreen(geom.Vec2{X: worldCenterX, Y: 0})
	assert.Equal(t, float32(config.ScreenWidth/2), x)
	assert.Equal(t, float32(config.ScreenHeight/2), y)

	p := screenToWorld(config.ScreenWidth/2+int(config.PixelsPerUnit), config.ScreenHeight/2)
	assert.InDelta(t, worldCenterX+1, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, float32(0), barWidth(0, 100, 30))
	assert.Equal(t, float32(15), barWidth(50, 100, 30))
	assert.Equal(t, float32(30), barWidth(150, 100, 30))
	assert.Equal(t, float32(0), barWidth(10, 0, 30))
}
