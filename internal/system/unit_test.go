package system

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/event"
	"go-wild-friends/pkg/geom"
)

// engage ticks until the attacker reaches the Attacking state.
func engage(t *testing.T, w *testWorld, attacker *component.Unit) {
	t.Helper()
	for i := 0; i < 10 && attacker.State != component.UnitAttacking; i++ {
		w.units.Update(0)
	}
	require.Equal(t, component.UnitAttacking, attacker.State)
}

func TestUnitSystem_SubtractIntervalFiresEveryElapsedInterval(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Phase = component.PhaseBattle
	_, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	def := testDef("fox")
	def.Stats.MaxHP = 1000
	_, target := w.spawn(t, def, component.TeamEnemy, geom.Vec2{X: 1})
	target.WakeTimer = 100

	engage(t, w, attacker)
	interval, _ := attacker.AttackInterval()

	w.units.Update(3 * interval)
	assert.Equal(t, 1000-30, target.HP)
	assert.InDelta(t, 0, attacker.AttackTimer, 1e-9)

	w.units.Update(interval * 0.5)
	assert.Equal(t, 1000-30, target.HP)
	w.units.Update(interval * 0.5)
	assert.Equal(t, 1000-40, target.HP)
}

func TestUnitSystem_AttackCadenceSurvivesRounding(t *testing.T) {
	for _, freq := range []float64{0.3, 0.7, 1.1, 2, 3, 7} {
		t.Run(fmt.Sprintf("freq=%g", freq), func(t *testing.T) {
			w := newTestWorld(t)
			w.ecs.Phase = component.PhaseBattle
			def := testDef("otter")
			def.Stats.AttackFrequency = freq
			_, attacker := w.spawn(t, def, component.TeamPlayer, geom.Vec2{})
			foe := testDef("fox")
			foe.Stats.MaxHP = 100000
			_, target := w.spawn(t, foe, component.TeamEnemy, geom.Vec2{X: 1})
			target.WakeTimer = 100

			engage(t, w, attacker)
			interval, ok := attacker.AttackInterval()
			require.True(t, ok)
			hits := func() int { return (foe.Stats.MaxHP - target.HP) / def.Stats.ATK }

			w.units.Update(3 * interval)
			assert.Equal(t, 3, hits(), "timer=%v", attacker.AttackTimer)
			assert.GreaterOrEqual(t, attacker.AttackTimer, 0.0)

			w.units.Update(interval)
			assert.Equal(t, 4, hits(), "timer=%v", attacker.AttackTimer)
		})
	}
}

func TestUnitSystem_StopsWhenTargetDiesMidLoop(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Phase = component.PhaseBattle
	_, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	def := testDef("fox")
	def.Stats.MaxHP = 15
	_, target := w.spawn(t, def, component.TeamEnemy, geom.Vec2{X: 1})
	target.WakeTimer = 100

	engage(t, w, attacker)
	interval, _ := attacker.AttackInterval()
	w.units.Update(5 * interval)

	assert.True(t, target.IsDead())
	assert.Equal(t, 1, w.count(event.UnitDied))
	assert.Equal(t, 2*attacker.Stats.MPGainOnAttack, attacker.MP)

	w.units.Update(0)
	assert.Equal(t, component.UnitIdle, attacker.State)
	assert.Zero(t, attacker.TargetID)
}

func TestUnitSystem_MovesUntilInRange(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Phase = component.PhaseBattle
	attackerID, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	_, target := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 5})
	target.WakeTimer = 100

	w.units.Update(0)
	require.Equal(t, component.UnitMoving, attacker.State)

	w.units.Update(1) // speed 2
	assert.InDelta(t, 2.0, w.ecs.Positions[attackerID].X, 1e-9)

	w.units.Update(10)
	assert.InDelta(t, 4.0, w.ecs.Positions[attackerID].X, 1e-9, "stops at attack range")

	w.units.Update(0)
	assert.Equal(t, component.UnitAttacking, attacker.State)
	assert.Zero(t, attacker.AttackTimer)
}

func TestUnitSystem_OnlyActsInBattle(t *testing.T) {
	w := newTestWorld(t)
	_, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 1})

	w.units.Update(1)
	assert.Equal(t, component.UnitIdle, attacker.State)
}

func TestUnitSystem_StunnedAndSleepingUnitsWait(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Phase = component.PhaseBattle
	id, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	_, sleeper := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 1})
	sleeper.WakeTimer = 0.5

	w.status.ApplyStun(id, 1)
	w.units.Update(0.3)
	assert.Equal(t, component.UnitStunned, attacker.State)
	assert.Equal(t, component.UnitIdle, sleeper.State)

	w.units.Update(0.3)
	assert.Equal(t, component.UnitIdle, sleeper.State, "wake timer consumed this tick")
	w.units.Update(0)
	assert.Equal(t, component.UnitMoving, sleeper.State)
}

func TestUnitSystem_RetargetsAfterTargetDies(t *testing.T) {
	w := newTestWorld(t)
	w.ecs.Phase = component.PhaseBattle
	_, attacker := w.spawn(t, testDef("otter"), component.TeamPlayer, geom.Vec2{})
	nearID, near := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 1})
	farID, far := w.spawn(t, testDef("fox"), component.TeamEnemy, geom.Vec2{X: 1.5})
	near.WakeTimer, far.WakeTimer = 100, 100

	engage(t, w, attacker)
	require.Equal(t, nearID, attacker.TargetID)

	w.combat.Die(nearID)
	w.units.Update(0)
	w.units.Update(0)
	assert.Equal(t, farID, attacker.TargetID)
}
