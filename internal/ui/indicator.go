// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator: круг цвета текущей фазы. Клик по нему начинает бой.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор с затухающей пульсацией после клика.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	r := i.Radius * pulse(i.LastClickTime)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked проверяет, был ли клик внутри индикатора.
func (i *StateIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

// pulse дает масштаб 1.3 сразу после клика и плавно возвращает к 1.
func pulse(since time.Time) float32 {
	elapsed := time.Since(since).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx := float32(x) - cx
	dy := float32(y) - cy
	return dx*dx+dy*dy <= r*r
}
