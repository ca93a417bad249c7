package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/types"
)

func TestNewEntity_Monotonic(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	ecs.RemoveEntity(a)
	c := ecs.NewEntity()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestSortedUnitIDsAndLiveUnit(t *testing.T) {
	ecs := NewECS()
	for _, id := range []types.EntityID{5, 2, 9} {
		ecs.Units[id] = &component.Unit{Team: component.TeamEnemy}
	}
	ecs.Units[9].State = component.UnitDead

	assert.Equal(t, []types.EntityID{2, 5, 9}, ecs.SortedUnitIDs())
	_, ok := ecs.LiveUnit(9)
	assert.False(t, ok)
	_, ok = ecs.LiveUnit(5)
	assert.True(t, ok)
	assert.Equal(t, 2, ecs.CountAlive(component.TeamEnemy))
	assert.Zero(t, ecs.CountAlive(component.TeamPlayer))
}
