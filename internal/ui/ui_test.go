package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 5: "V", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestSpeedButton_Toggle(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, []float64{1, 2, 4}, []color.RGBA{{}, {}, {}})
	assert.Equal(t, 1.0, b.Speed())
	assert.Equal(t, 2.0, b.ToggleState())
	assert.Equal(t, 4.0, b.ToggleState())
	assert.Equal(t, 1.0, b.ToggleState())

	assert.True(t, b.IsClicked(5, 5))
	assert.False(t, b.IsClicked(50, 0))
}

func TestStateIndicator_IsClicked(t *testing.T) {
	i := NewStateIndicator(100, 100, 10)
	assert.True(t, i.IsClicked(105, 105))
	assert.False(t, i.IsClicked(111, 100))
}
