package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wild-friends/internal/defs"
)

func TestPRNGService_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPickDistinct(t *testing.T) {
	prng := NewPRNGService(7)
	keys := []string{"a", "b", "c", "d", "e"}

	for i := 0; i < 50; i++ {
		picked := prng.PickDistinct(keys, 3)
		require.Len(t, picked, 3)
		seen := map[string]bool{}
		for _, k := range picked {
			assert.False(t, seen[k], "duplicate %s", k)
			seen[k] = true
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, keys, "input must not be reordered")
	assert.Len(t, prng.PickDistinct([]string{"x", "y"}, 3), 2)
	assert.Nil(t, prng.PickDistinct(nil, 3))
}

func TestChooseWeighted(t *testing.T) {
	prng := NewPRNGService(1)
	entries := []defs.WeightedKey{{Key: "common", Weight: 9}, {Key: "rare", Weight: 1}, {Key: "never", Weight: 0}}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[prng.ChooseWeighted(entries)]++
	}
	assert.Zero(t, counts["never"])
	assert.InDelta(t, 0.9, float64(counts["common"])/10000, 0.03)

	assert.Equal(t, "", prng.ChooseWeighted(nil))
	assert.Equal(t, "only", prng.ChooseWeighted([]defs.WeightedKey{{Key: "only", Weight: 0}}))
}
