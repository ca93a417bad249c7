package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBattleLog(t *testing.T) {
	bl := NewBattleLog()
	bl.Add(1, "otter#3", "player", "unit", "died", "otter", 0)
	bl.Add(2, "--", "enemy", "wave", "cleared", "wave 1", 0)
	bl.Add(5, "otter#4", "player", "unit", "died", "otter", 0)

	assert.Equal(t, 3, bl.Len())
	assert.Equal(t, 2, bl.Count("unit", "died"))
	assert.Equal(t, 3, bl.Count("", ""))

	last, ok := bl.LastOf("unit", "died")
	assert.True(t, ok)
	assert.Equal(t, 5, last.Tick)
	_, ok = bl.LastOf("quiz", "started")
	assert.False(t, ok)

	assert.True(t, bl.HasEntry("wave", "cleared", "wave 1"))
	assert.False(t, bl.HasEntry("wave", "cleared", "wave 2"))

	assert.Equal(t, 3, strings.Count(bl.Format(), "\n"))
	tail := bl.Tail(1)
	assert.Contains(t, tail, "[T=0005]")
	assert.NotContains(t, tail, "[T=0001]")
}
