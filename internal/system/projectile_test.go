package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wild-friends/internal/component"
	"go-wild-friends/pkg/geom"
)

func TestProjectile_FollowsMovingTargetAndHitsOnce(t *testing.T) {
	w := newTestWorld(t)
	sourceID, _ := w.spawn(t, testDef("egret"), component.TeamPlayer, geom.Vec2{})
	targetID, target := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 10})

	projID := w.projectiles.Fire(sourceID, geom.Vec2{}, targetID, 25, 1.0, geom.FlatArc)

	w.projectiles.Update(0.5)
	require.Contains(t, w.ecs.Projectiles, projID)
	assert.InDelta(t, 5.0, w.ecs.Positions[projID].X, 1e-9)

	// Цель сместилась: снаряд летит к новой позиции.
	w.ecs.Positions[targetID].X = 20
	w.projectiles.Update(0.25)
	assert.InDelta(t, 15.0, w.ecs.Positions[projID].X, 1e-9)
	assert.Equal(t, 100, target.HP)

	w.projectiles.Update(0.25)
	assert.Equal(t, 75, target.HP)
	assert.NotContains(t, w.ecs.Projectiles, projID)

	w.projectiles.Update(1)
	assert.Equal(t, 75, target.HP)
}

func TestProjectile_ArcLiftsMidFlight(t *testing.T) {
	w := newTestWorld(t)
	targetID, _ := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 10})

	projID := w.projectiles.Fire(0, geom.Vec2{}, targetID, 5, 1.0, geom.ParabolicArc(2))
	w.projectiles.Update(0.5)
	assert.InDelta(t, -2.0, w.ecs.Positions[projID].Y, 1e-9)
}

func TestProjectile_DiscardedWhenTargetGone(t *testing.T) {
	w := newTestWorld(t)
	deadID, dead := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 10})
	otherID, other := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 10})

	w.projectiles.Fire(0, geom.Vec2{}, deadID, 5, 1.0, nil)
	w.projectiles.Fire(0, geom.Vec2{}, otherID, 5, 1.0, nil)
	w.combat.Die(deadID)
	w.ecs.RemoveEntity(otherID)

	w.projectiles.Update(2)
	assert.Zero(t, w.projectiles.Count())
	assert.Zero(t, dead.HP)
	assert.Equal(t, 100, other.HP)
}

func TestProjectile_HitRadiusAndClear(t *testing.T) {
	w := newTestWorld(t)
	targetID, target := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 0.2})

	w.projectiles.Fire(0, geom.Vec2{}, targetID, 30, 5.0, nil)
	w.projectiles.Update(0.01)
	assert.Equal(t, 70, target.HP, "already within hit radius")

	w.projectiles.Fire(0, geom.Vec2{X: -50}, targetID, 30, 5.0, nil)
	w.projectiles.Fire(0, geom.Vec2{X: -60}, targetID, 30, 5.0, nil)
	w.projectiles.Clear()
	assert.Zero(t, w.projectiles.Count())
}
