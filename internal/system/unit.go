// internal/system/unit.go
package system

import (
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// attackEpsilon: допуск при сравнении таймера атаки с интервалом.
const attackEpsilon = 1e-9

// UnitSystem ведет конечный автомат поведения юнитов:
// Idle -> Moving -> Attacking, с возвратом в Idle при потере цели.
type UnitSystem struct {
	ecs             *entity.ECS
	combatSystem    *CombatSystem
	detectionFactor float64
}

func NewUnitSystem(ecs *entity.ECS, combatSystem *CombatSystem, detectionFactor float64) *UnitSystem {
	return &UnitSystem{
		ecs:             ecs,
		combatSystem:    combatSystem,
		detectionFactor: detectionFactor,
	}
}

// Update продвигает всех юнитов на deltaTime. Вне боя ничего не делает.
func (s *UnitSystem) Update(deltaTime float64) {
	if s.ecs.Phase != component.PhaseBattle {
		return
	}
	for _, id := range s.ecs.SortedUnitIDs() {
		unit, ok := s.ecs.Units[id]
		if !ok {
			continue
		}
		s.tick(id, unit, deltaTime)
	}
}

func (s *UnitSystem) tick(id types.EntityID, unit *component.Unit, deltaTime float64) {
	if unit.State == component.UnitStunned || unit.State == component.UnitDead {
		return
	}
	if unit.WakeTimer > 0 {
		unit.WakeTimer -= deltaTime
		return
	}

	switch unit.State {
	case component.UnitIdle:
		if targetID, found := FindNearestEnemy(s.ecs, id, s.detectionFactor); found {
			unit.TargetID = targetID
			unit.State = component.UnitMoving
		}

	case component.UnitMoving:
		if !s.hasLiveTarget(unit) {
			unit.TargetID = 0
			unit.State = component.UnitIdle
			return
		}
		if InAttackRange(s.ecs, id, unit.TargetID) {
			unit.State = component.UnitAttacking
			unit.AttackTimer = 0
			return
		}
		s.moveTowardsTarget(id, unit, deltaTime)

	case component.UnitAttacking:
		if !s.hasLiveTarget(unit) {
			unit.TargetID = 0
			unit.State = component.UnitIdle
			return
		}
		if !InAttackRange(s.ecs, id, unit.TargetID) {
			unit.State = component.UnitMoving
			return
		}
		interval, ok := unit.AttackInterval()
		if !ok {
			log.Printf("UnitSystem: %s #%d has attack frequency %.2f, skipping", unit.DefID, id, unit.Stats.AttackFrequency)
			return
		}
		unit.AttackTimer += deltaTime
		// Вычитаем интервал, а не обнуляем таймер: при скорости атаки
		// выше частоты тиков атаки не теряются. Допуск attackEpsilon
		// гасит остаток округления после вычитаний.
		for unit.AttackTimer+attackEpsilon >= interval {
			unit.AttackTimer -= interval
			s.combatSystem.ExecuteAttackOrSkill(id)
			if unit.State != component.UnitAttacking || !s.hasLiveTarget(unit) {
				break
			}
		}
		if unit.AttackTimer < 0 {
			unit.AttackTimer = 0
		}
	}
}

func (s *UnitSystem) hasLiveTarget(unit *component.Unit) bool {
	if unit.TargetID == 0 {
		return false
	}
	_, ok := s.ecs.LiveUnit(unit.TargetID)
	return ok
}

// moveTowardsTarget подходит к цели, останавливаясь на дистанции атаки.
func (s *UnitSystem) moveTowardsTarget(id types.EntityID, unit *component.Unit, deltaTime float64) {
	pos, ok := s.ecs.Positions[id]
	if !ok {
		return
	}
	targetPos, ok := s.ecs.Positions[unit.TargetID]
	if !ok {
		return
	}

	from, to := pos.Vec(), targetPos.Vec()
	gap := geom.Distance(from, to) - unit.Stats.Range
	if gap <= 0 {
		return
	}
	step := unit.Stats.MoveSpeed * deltaTime
	if step > gap {
		step = gap
	}
	pos.Set(geom.MoveTowards(from, to, step))
}
