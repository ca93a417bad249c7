// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Color        color.Color
	LastColor    color.Color // для последней волны
	OutlineColor color.Color
}

func NewWaveIndicator(x, y float32, c, last color.Color) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        c,
		LastColor:    last,
		OutlineColor: color.Black,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны (с единицы) с обводкой, центрируя по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber, total int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber == total {
		textColor = i.LastColor
	}

	x := int(i.X) - text.BoundString(face, label).Dx()/2
	y := int(i.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
			}
		}
	}
	text.Draw(screen, label, face, x, y, textColor)
}
