// internal/system/status_effect.go
package system

import (
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/types"
)

// StatusEffectSystem управляет оглушением. Окончание эффекта
// планируется в Scheduler, поэтому своего Update у системы нет.
type StatusEffectSystem struct {
	ecs       *entity.ECS
	scheduler *timer.Scheduler
}

func NewStatusEffectSystem(ecs *entity.ECS, scheduler *timer.Scheduler) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, scheduler: scheduler}
}

// ApplyStun оглушает живого юнита на duration секунд. Повторное
// оглушение продлевает эффект с текущего момента.
func (s *StatusEffectSystem) ApplyStun(id types.EntityID, duration float64) bool {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok {
		return false
	}
	if unit.StunHandle != 0 {
		s.scheduler.Cancel(unit.StunHandle)
	}
	unit.State = component.UnitStunned
	unit.StunHandle = s.scheduler.Schedule(duration, id, func() {
		s.expireStun(id)
	})
	log.Printf("StatusEffectSystem: %s #%d stunned for %.2fs", unit.DefID, id, duration)
	return true
}

// IsStunned сообщает, оглушен ли юнит.
func (s *StatusEffectSystem) IsStunned(id types.EntityID) bool {
	unit, ok := s.ecs.Units[id]
	return ok && unit.State == component.UnitStunned
}

func (s *StatusEffectSystem) expireStun(id types.EntityID) {
	unit, ok := s.ecs.Units[id]
	if !ok || unit.IsDead() {
		return
	}
	unit.StunHandle = 0
	if unit.State == component.UnitStunned {
		// Из Idle юнит заново выберет цель.
		unit.State = component.UnitIdle
	}
}
