// internal/system/combat.go
package system

import (
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/config"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// ProjectileLauncher создает снаряд, урон которого будет нанесен при попадании.
type ProjectileLauncher interface {
	Fire(sourceID types.EntityID, origin geom.Vec2, targetID types.EntityID, damage int, travel float64, arc geom.ArcProfile) types.EntityID
}

// CombatSystem разрешает атаки, навыки, урон, щиты, ману и смерть юнитов.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	scheduler       *timer.Scheduler
	statusEffects   *StatusEffectSystem
	skills          *SkillRegistry
	launcher        ProjectileLauncher
	deathGrace      float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, scheduler *timer.Scheduler,
	statusEffects *StatusEffectSystem, skills *SkillRegistry, deathGrace float64) *CombatSystem {
	if skills == nil {
		skills = NewSkillRegistry()
	}
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		scheduler:       scheduler,
		statusEffects:   statusEffects,
		skills:          skills,
		deathGrace:      deathGrace,
	}
}

// SetProjectileLauncher подключает систему снарядов. Без нее дальние
// атаки наносят урон сразу.
func (s *CombatSystem) SetProjectileLauncher(launcher ProjectileLauncher) {
	s.launcher = launcher
}

// ExecuteAttackOrSkill выполняет одно действие атакующего: навык, если
// мана полна и навык назначен, иначе базовую атаку по текущей цели.
func (s *CombatSystem) ExecuteAttackOrSkill(attackerID types.EntityID) bool {
	attacker, ok := s.ecs.LiveUnit(attackerID)
	if !ok {
		return false
	}
	targetID := attacker.TargetID
	if _, ok := s.ecs.LiveUnit(targetID); !ok {
		targetID = 0
	}

	if attacker.SkillReady() {
		effect, found := s.skills.Lookup(attacker.Skill.Kind)
		if found {
			s.activateSkill(attackerID, attacker, targetID, effect)
			return true
		}
		log.Printf("CombatSystem: no handler for skill %q of %s, falling back to basic attack", attacker.Skill.Kind, attacker.DefID)
	}

	if targetID == 0 {
		return false
	}
	s.basicAttack(attackerID, attacker, targetID)
	return true
}

func (s *CombatSystem) activateSkill(casterID types.EntityID, caster *component.Unit, targetID types.EntityID, effect SkillEffect) {
	mutations := effect(SkillContext{
		CasterID: casterID,
		Caster:   caster,
		TargetID: targetID,
		Skill:    *caster.Skill,
	})
	caster.MP = 0
	for _, m := range mutations {
		s.Apply(m)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.SkillActivated, Data: event.UnitEvent{
		ID: casterID, DefID: caster.DefID, Team: caster.Team.String(), Skill: caster.Skill.Name,
	}})
}

func (s *CombatSystem) basicAttack(attackerID types.EntityID, attacker *component.Unit, targetID types.EntityID) {
	if attacker.IsRanged() && s.launcher != nil {
		origin := s.ecs.Positions[attackerID].Vec()
		var arc geom.ArcProfile = geom.FlatArc
		if attacker.Attack.ArcHeight > 0 {
			arc = geom.ParabolicArc(attacker.Attack.ArcHeight)
		}
		s.launcher.Fire(attackerID, origin, targetID, attacker.Stats.ATK, attacker.Attack.ProjectileTravel, arc)
	} else {
		if attacker.IsRanged() {
			log.Printf("CombatSystem: %s is ranged but no projectile system is wired, hitting instantly", attacker.DefID)
		}
		s.TakeDamage(targetID, attacker.Stats.ATK)
	}
	s.GainMP(attackerID, attacker.Stats.MPGainOnAttack)
}

// Apply применяет изменение, которое вернул навык.
func (s *CombatSystem) Apply(m Mutation) {
	switch m.Kind {
	case MutationAddShield:
		s.AddShield(m.Target, m.Amount)
	case MutationStun:
		if s.statusEffects != nil {
			s.statusEffects.ApplyStun(m.Target, m.Duration)
		}
	case MutationDamage:
		s.TakeDamage(m.Target, m.Amount)
	case MutationHeal:
		s.Heal(m.Target, m.Amount)
	default:
		log.Printf("CombatSystem: unknown mutation kind %d", m.Kind)
	}
}

// TakeDamage наносит урон с учетом защиты и щита и возвращает
// фактически потерянное здоровье. Мертвые и удаленные юниты урон не получают.
func (s *CombatSystem) TakeDamage(id types.EntityID, amount int) int {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok {
		return 0
	}

	damage := amount - unit.Stats.DEF
	if damage < 0 {
		damage = 0
	}

	// Щит поглощает урон первым
	if unit.Shield > 0 {
		if unit.Shield >= damage {
			unit.Shield -= damage
			damage = 0
		} else {
			damage -= unit.Shield
			unit.Shield = 0
		}
	}

	lost := damage
	if lost > unit.HP {
		lost = unit.HP
	}
	unit.HP -= lost
	if lost > 0 {
		s.ecs.Flashes[id] = &component.DamageFlash{Duration: config.DamageFlashDuration}
	}

	if damage > 0 {
		s.GainMP(id, unit.Stats.MPGainOnHit)
	}

	if unit.HP <= 0 {
		s.Die(id)
	}
	return lost
}

// GainMP добавляет ману, не превышая максимум.
func (s *CombatSystem) GainMP(id types.EntityID, amount int) {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok || amount <= 0 {
		return
	}
	unit.MP += amount
	if unit.MP > unit.Stats.MaxMP {
		unit.MP = unit.Stats.MaxMP
	}
}

// AddShield увеличивает щит живого юнита.
func (s *CombatSystem) AddShield(id types.EntityID, amount int) {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok || amount <= 0 {
		return
	}
	unit.Shield += amount
	log.Printf("CombatSystem: %s #%d gained %d shield, total %d", unit.DefID, id, amount, unit.Shield)
}

// Heal восстанавливает здоровье не выше максимума.
func (s *CombatSystem) Heal(id types.EntityID, amount int) {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok || amount <= 0 {
		return
	}
	unit.HP += amount
	if unit.HP > unit.Stats.MaxHP {
		unit.HP = unit.Stats.MaxHP
	}
}

// Die переводит юнита в Dead один раз и планирует удаление тела.
func (s *CombatSystem) Die(id types.EntityID) {
	unit, ok := s.ecs.LiveUnit(id)
	if !ok {
		return
	}
	unit.State = component.UnitDead
	unit.HP = 0
	unit.TargetID = 0
	unit.StunHandle = 0
	unit.DiedAt = s.scheduler.Now()
	s.scheduler.CancelOwner(id)

	log.Printf("CombatSystem: %s #%d (%s) died", unit.DefID, id, unit.Team)
	data := event.UnitEvent{ID: id, DefID: unit.DefID, Team: unit.Team.String()}
	s.eventDispatcher.Dispatch(event.Event{Type: event.UnitDied, Data: data})

	s.scheduler.Schedule(s.deathGrace, 0, func() {
		if _, exists := s.ecs.Units[id]; !exists {
			return
		}
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.UnitRemoved, Data: data})
	})
}
