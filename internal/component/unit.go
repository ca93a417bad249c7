// internal/component/unit.go
package component

import (
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/types"
)

// Team: сторона, за которую сражается юнит.
type Team int

const (
	TeamPlayer Team = iota
	TeamEnemy
)

// Opponent возвращает противоположную сторону.
func (t Team) Opponent() Team {
	if t == TeamPlayer {
		return TeamEnemy
	}
	return TeamPlayer
}

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// UnitState: состояние поведения юнита.
type UnitState int

const (
	UnitIdle UnitState = iota
	UnitMoving
	UnitAttacking
	UnitStunned
	UnitDead
)

func (s UnitState) String() string {
	switch s {
	case UnitIdle:
		return "idle"
	case UnitMoving:
		return "moving"
	case UnitAttacking:
		return "attacking"
	case UnitStunned:
		return "stunned"
	case UnitDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Unit: боевой юнит любой стороны.
type Unit struct {
	DefID string
	Name  string
	Team  Team
	Stats defs.UnitStats

	HP     int
	MP     int
	Shield int
	State  UnitState

	// TargetID: слабая ссылка, 0 значит "нет цели". Перед каждым
	// использованием цель заново ищется в ECS.
	TargetID    types.EntityID
	AttackTimer float64
	WakeTimer   float64 // задержка появления волны, пока > 0 юнит не действует

	Attack defs.AttackDef
	Skill  *defs.SkillDefinition

	StunHandle timer.Handle
	DiedAt     float64
}

// NewUnit создает юнита с полным здоровьем по определению архетипа.
func NewUnit(def defs.UnitDefinition, team Team) *Unit {
	return &Unit{
		DefID:  def.ID,
		Name:   def.Name,
		Team:   team,
		Stats:  def.Stats,
		HP:     def.Stats.MaxHP,
		State:  UnitIdle,
		Attack: def.Attack,
		Skill:  def.Skill,
	}
}

// IsDead сообщает, погиб ли юнит.
func (u *Unit) IsDead() bool {
	return u.State == UnitDead
}

// IsRanged сообщает, летит ли базовая атака снарядом.
func (u *Unit) IsRanged() bool {
	return u.Attack.Style == defs.AttackRanged
}

// AttackInterval возвращает секунды между атаками, false при
// некорректной частоте атак.
func (u *Unit) AttackInterval() (float64, bool) {
	if u.Stats.AttackFrequency <= 0 {
		return 0, false
	}
	return 1.0 / u.Stats.AttackFrequency, true
}

// SkillReady сообщает, накоплена ли мана для навыка.
func (u *Unit) SkillReady() bool {
	return u.Skill != nil && u.Stats.MaxMP > 0 && u.MP >= u.Stats.MaxMP
}
