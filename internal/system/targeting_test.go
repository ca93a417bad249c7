package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-wild-friends/internal/component"
	"go-wild-friends/pkg/geom"
)

func TestFindNearestEnemy(t *testing.T) {
	w := newTestWorld(t)
	selfID, _ := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	w.spawn(t, testDef("ally"), component.TeamPlayer, geom.Vec2{X: 0.5})
	farID, _ := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 6})
	nearID, _ := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 3})

	got, ok := FindNearestEnemy(w.ecs, selfID, 0)
	assert.True(t, ok)
	assert.Equal(t, nearID, got)

	w.combat.Die(nearID)
	got, ok = FindNearestEnemy(w.ecs, selfID, 0)
	assert.True(t, ok)
	assert.Equal(t, farID, got)
}

func TestFindNearestEnemy_TieBreaksOnLowestID(t *testing.T) {
	w := newTestWorld(t)
	selfID, _ := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	firstID, _ := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 0, Y: 2})
	w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 0, Y: -2})
	w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 2, Y: 0})

	for i := 0; i < 20; i++ {
		got, ok := FindNearestEnemy(w.ecs, selfID, 0)
		assert.True(t, ok)
		assert.Equal(t, firstID, got)
	}
}

func TestFindNearestEnemy_DetectionRadius(t *testing.T) {
	w := newTestWorld(t)
	selfID, _ := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 30})

	_, ok := FindNearestEnemy(w.ecs, selfID, 20) // range 1 * 20
	assert.False(t, ok)
	_, ok = FindNearestEnemy(w.ecs, selfID, 40)
	assert.True(t, ok)
}

func TestFindNearestEnemy_DeadSeekerFindsNothing(t *testing.T) {
	w := newTestWorld(t)
	selfID, _ := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 1})

	w.combat.Die(selfID)
	_, ok := FindNearestEnemy(w.ecs, selfID, 0)
	assert.False(t, ok)
}
