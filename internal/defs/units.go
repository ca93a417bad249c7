// internal/defs/units.go
package defs

import (
	"errors"
	"fmt"
	"sort"
)

// AttackStyle defines how a unit delivers its basic attack.
type AttackStyle string

const (
	AttackMelee  AttackStyle = "MELEE"
	AttackRanged AttackStyle = "RANGED"
)

// SkillKind is the closed set of skills a unit can carry.
type SkillKind string

const (
	SkillShield SkillKind = "SHIELD"
	SkillStun   SkillKind = "STUN"
)

// UnitStats are the base numbers of an archetype.
type UnitStats struct {
	MaxHP           int     `json:"max_hp"`
	MaxMP           int     `json:"max_mp"`
	ATK             int     `json:"atk"`
	DEF             int     `json:"def"`
	Range           float64 `json:"range"`
	MoveSpeed       float64 `json:"move_speed"`
	AttackFrequency float64 `json:"attack_frequency"` // attacks per second
	MPGainOnAttack  int     `json:"mp_gain_on_attack"`
	MPGainOnHit     int     `json:"mp_gain_on_hit"`
}

// AttackDef describes the basic attack. Ranged attacks spawn a projectile that
// needs ProjectileTravel seconds to land.
type AttackDef struct {
	Style            AttackStyle `json:"style"`
	ProjectileTravel float64     `json:"projectile_travel,omitempty"`
	ArcHeight        float64     `json:"arc_height,omitempty"`
}

// SkillDefinition binds a skill kind to its parameters. Amount is the shield
// size for SHIELD; Duration is the stun length in seconds for STUN.
type SkillDefinition struct {
	Kind     SkillKind `json:"kind"`
	Name     string    `json:"name"`
	Amount   int       `json:"amount,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}

// UnitDefinition holds all the static data for one archetype.
type UnitDefinition struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Playable   bool             `json:"playable"` // part of the friendship and deck roster
	Cost       int              `json:"cost"`
	ShopWeight int              `json:"shop_weight"`
	Stats      UnitStats        `json:"stats"`
	Attack     AttackDef        `json:"attack"`
	Skill      *SkillDefinition `json:"skill,omitempty"`
}

// IsRanged reports whether basic attacks travel as projectiles.
func (d UnitDefinition) IsRanged() bool {
	return d.Attack.Style == AttackRanged
}

// Validate reports the first set of problems that would break the simulation.
func (d UnitDefinition) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if d.Stats.MaxHP <= 0 {
		errs = append(errs, errors.New("max_hp must be > 0"))
	}
	if d.Stats.MaxMP < 0 {
		errs = append(errs, errors.New("max_mp must be >= 0"))
	}
	if d.Stats.AttackFrequency <= 0 {
		errs = append(errs, errors.New("attack_frequency must be > 0"))
	}
	if d.Stats.Range <= 0 {
		errs = append(errs, errors.New("range must be > 0"))
	}
	if d.Stats.MoveSpeed < 0 {
		errs = append(errs, errors.New("move_speed must be >= 0"))
	}
	if d.Skill != nil && d.Skill.Kind != SkillShield && d.Skill.Kind != SkillStun {
		errs = append(errs, fmt.Errorf("unknown skill kind %q", d.Skill.Kind))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("unit %q: %w", d.ID, err)
	}
	return nil
}

// UnitLibrary maps archetype IDs to their definitions.
type UnitLibrary map[string]UnitDefinition

// Get returns the definition for id.
func (l UnitLibrary) Get(id string) (UnitDefinition, bool) {
	def, ok := l[id]
	return def, ok
}

// PlayableKeys returns the sorted roster of archetypes the player can own.
func (l UnitLibrary) PlayableKeys() []string {
	keys := make([]string, 0, len(l))
	for id, def := range l {
		if def.Playable {
			keys = append(keys, id)
		}
	}
	sort.Strings(keys)
	return keys
}

// ShopEntries returns weighted shop offers for every playable archetype.
func (l UnitLibrary) ShopEntries() []WeightedKey {
	keys := l.PlayableKeys()
	entries := make([]WeightedKey, 0, len(keys))
	for _, k := range keys {
		w := l[k].ShopWeight
		if w <= 0 {
			w = 1
		}
		entries = append(entries, WeightedKey{Key: k, Weight: w})
	}
	return entries
}

// WeightedKey is one entry of a weighted random table.
type WeightedKey struct {
	Key    string `json:"key"`
	Weight int    `json:"weight"`
}
