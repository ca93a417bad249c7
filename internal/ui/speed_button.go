// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton переключает множитель скорости игры по кругу.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	Speeds        []float64
	StateColors   []color.RGBA
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, speeds []float64, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		Speeds:      speeds,
		StateColors: stateColors,
	}
}

// Speed возвращает текущий множитель.
func (b *SpeedButton) Speed() float64 {
	if len(b.Speeds) == 0 {
		return 1
	}
	return b.Speeds[b.CurrentState]
}

// Draw рисует две стрелки ">>" цветом текущей скорости.
func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * pulse(b.LastClickTime)
	c := color.RGBA{255, 255, 255, 255}
	if len(b.StateColors) > 0 {
		c = b.StateColors[b.CurrentState%len(b.StateColors)]
	}

	height := size * 1.2
	offset := size * 0.8
	for _, dx := range []float32{0, offset} {
		left := b.X - size + dx
		tip := b.X + dx
		vector.StrokeLine(screen, left, b.Y-height/2, tip, b.Y, 3, c, true)
		vector.StrokeLine(screen, tip, b.Y, left, b.Y+height/2, 3, c, true)
	}
}

// IsClicked проверяет попадание по описанному кругу, так как форма сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// ToggleState переходит к следующей скорости и возвращает ее.
func (b *SpeedButton) ToggleState() float64 {
	if len(b.Speeds) > 0 {
		b.CurrentState = (b.CurrentState + 1) % len(b.Speeds)
	}
	b.LastClickTime = time.Now()
	return b.Speed()
}
