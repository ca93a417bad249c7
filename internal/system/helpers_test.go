package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

const testDeathGrace = 2.0

type testWorld struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	scheduler   *timer.Scheduler
	status      *StatusEffectSystem
	combat      *CombatSystem
	projectiles *ProjectileSystem
	units       *UnitSystem
	events      []event.Event
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		scheduler:  timer.NewScheduler(),
	}
	w.status = NewStatusEffectSystem(w.ecs, w.scheduler)
	w.combat = NewCombatSystem(w.ecs, w.dispatcher, w.scheduler, w.status, NewSkillRegistry(), testDeathGrace)
	w.projectiles = NewProjectileSystem(w.ecs, w.combat, 0.25)
	w.combat.SetProjectileLauncher(w.projectiles)
	w.units = NewUnitSystem(w.ecs, w.combat, 0)
	for _, et := range []event.EventType{event.UnitDied, event.UnitRemoved, event.SkillActivated,
		event.WaveSpawned, event.WaveCleared, event.AllWavesCleared} {
		w.dispatcher.SubscribeFunc(et, func(e event.Event) { w.events = append(w.events, e) })
	}
	return w
}

func (w *testWorld) count(et event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// testDef is a plain melee archetype; tests tweak its stats as needed.
func testDef(id string) defs.UnitDefinition {
	return defs.UnitDefinition{
		ID:   id,
		Name: id,
		Stats: defs.UnitStats{
			MaxHP: 100, MaxMP: 100, ATK: 10, DEF: 0, Range: 1,
			MoveSpeed: 2, AttackFrequency: 2, MPGainOnAttack: 10, MPGainOnHit: 5,
		},
		Attack: defs.AttackDef{Style: defs.AttackMelee},
	}
}

func (w *testWorld) spawn(t *testing.T, def defs.UnitDefinition, team component.Team, pos geom.Vec2) (types.EntityID, *component.Unit) {
	t.Helper()
	id, err := SpawnUnit(w.ecs, defs.UnitLibrary{def.ID: def}, def.ID, team, pos, 1)
	require.NoError(t, err)
	return id, w.ecs.Units[id]
}
