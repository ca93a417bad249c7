package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-wild-friends/internal/defs"
)

func TestNewUnit(t *testing.T) {
	def := defs.DefaultUnits()[defs.Otter]
	u := NewUnit(def, TeamPlayer)

	assert.Equal(t, def.Stats.MaxHP, u.HP)
	assert.Zero(t, u.MP)
	assert.Equal(t, UnitIdle, u.State)
	assert.False(t, u.IsDead())
	assert.False(t, u.SkillReady())

	u.MP = u.Stats.MaxMP
	assert.Equal(t, u.Skill != nil, u.SkillReady())
}

func TestAttackInterval(t *testing.T) {
	u := &Unit{Stats: defs.UnitStats{AttackFrequency: 2}}
	interval, ok := u.AttackInterval()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, interval, 1e-9)

	u.Stats.AttackFrequency = 0
	_, ok = u.AttackInterval()
	assert.False(t, ok)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "stunned", UnitStunned.String())
	assert.Equal(t, "enemy", TeamPlayer.Opponent().String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.True(t, PhaseVictory.IsTerminal())
	assert.False(t, PhaseBattle.IsTerminal())
}
