// internal/system/skill.go
package system

import (
	"go-wild-friends/internal/component"
	"go-wild-friends/internal/config"
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/types"
)

// MutationKind: вид изменения состояния, которое возвращает навык.
type MutationKind int

const (
	MutationAddShield MutationKind = iota
	MutationStun
	MutationDamage
	MutationHeal
)

// Mutation описывает одно изменение юнита. Навыки не меняют состояние
// сами, изменения применяет CombatSystem.
type Mutation struct {
	Kind     MutationKind
	Target   types.EntityID
	Amount   int
	Duration float64
}

// SkillContext: все, что навык может прочитать при активации.
type SkillContext struct {
	CasterID types.EntityID
	Caster   *component.Unit
	TargetID types.EntityID // 0, если цели нет
	Skill    defs.SkillDefinition
}

// SkillEffect: чистая функция эффекта навыка.
type SkillEffect func(ctx SkillContext) []Mutation

// SkillRegistry сопоставляет вид навыка с его эффектом.
type SkillRegistry struct {
	effects map[defs.SkillKind]SkillEffect
}

// NewSkillRegistry создает реестр со щитом и оглушением.
func NewSkillRegistry() *SkillRegistry {
	r := &SkillRegistry{effects: make(map[defs.SkillKind]SkillEffect)}
	r.Register(defs.SkillShield, ShieldEffect)
	r.Register(defs.SkillStun, StunEffect)
	return r
}

// Register добавляет или заменяет эффект.
func (r *SkillRegistry) Register(kind defs.SkillKind, effect SkillEffect) {
	r.effects[kind] = effect
}

// Lookup возвращает эффект навыка.
func (r *SkillRegistry) Lookup(kind defs.SkillKind) (SkillEffect, bool) {
	effect, ok := r.effects[kind]
	return effect, ok
}

// ShieldEffect дает щит самому заклинателю.
func ShieldEffect(ctx SkillContext) []Mutation {
	amount := ctx.Skill.Amount
	if amount <= 0 {
		amount = config.DefaultShieldAmount
	}
	return []Mutation{{Kind: MutationAddShield, Target: ctx.CasterID, Amount: amount}}
}

// StunEffect оглушает текущую цель. Без цели навык ничего не делает.
func StunEffect(ctx SkillContext) []Mutation {
	if ctx.TargetID == 0 {
		return nil
	}
	duration := ctx.Skill.Duration
	if duration <= 0 {
		duration = config.DefaultStunDuration
	}
	return []Mutation{{Kind: MutationStun, Target: ctx.TargetID, Duration: duration}}
}
