package defs

// Archetype keys of the wetland roster and the enemies.
const (
	Frog       = "frog"
	Dragonfly  = "dragonfly"
	Egret      = "egret"
	Carp       = "carp"
	Otter      = "otter"
	WildDuck   = "wild_duck"
	Alligator  = "alligator"
	Crane      = "crane"
	Sturgeon   = "sturgeon"
	BlackStork = "black_stork"

	RedFox      = "red_fox"
	RedFoxAlpha = "red_fox_alpha"
)

func melee() AttackDef { return AttackDef{Style: AttackMelee} }

func ranged(travel, arc float64) AttackDef {
	return AttackDef{Style: AttackRanged, ProjectileTravel: travel, ArcHeight: arc}
}

func shield(amount int) *SkillDefinition {
	return &SkillDefinition{Kind: SkillShield, Name: "Shield", Amount: amount}
}

func stun(duration float64) *SkillDefinition {
	return &SkillDefinition{Kind: SkillStun, Name: "Stun", Duration: duration}
}

// DefaultUnits returns the built-in archetypes used when no unit file is given.
func DefaultUnits() UnitLibrary {
	defs := []UnitDefinition{
		{ID: Frog, Name: "Frog", Playable: true, Cost: 1, ShopWeight: 4,
			Stats:  UnitStats{MaxHP: 300, MaxMP: 60, ATK: 30, DEF: 5, Range: 1.2, MoveSpeed: 1.6, AttackFrequency: 1.0, MPGainOnAttack: 10, MPGainOnHit: 5},
			Attack: melee(), Skill: stun(1.0)},
		{ID: Dragonfly, Name: "Dragonfly", Playable: true, Cost: 1, ShopWeight: 4,
			Stats:  UnitStats{MaxHP: 220, MaxMP: 80, ATK: 22, DEF: 0, Range: 3.5, MoveSpeed: 2.2, AttackFrequency: 1.6, MPGainOnAttack: 10, MPGainOnHit: 5},
			Attack: ranged(0.4, 0.3)},
		{ID: Egret, Name: "Egret", Playable: true, Cost: 2, ShopWeight: 3,
			Stats:  UnitStats{MaxHP: 350, MaxMP: 70, ATK: 40, DEF: 8, Range: 1.5, MoveSpeed: 1.8, AttackFrequency: 0.9, MPGainOnAttack: 10, MPGainOnHit: 8},
			Attack: melee(), Skill: stun(1.5)},
		{ID: Carp, Name: "Carp", Playable: true, Cost: 1, ShopWeight: 4,
			Stats:  UnitStats{MaxHP: 400, MaxMP: 50, ATK: 25, DEF: 10, Range: 1.2, MoveSpeed: 1.2, AttackFrequency: 0.8, MPGainOnAttack: 10, MPGainOnHit: 10},
			Attack: melee(), Skill: shield(80)},
		{ID: Otter, Name: "Otter", Playable: true, Cost: 2, ShopWeight: 3,
			Stats:  UnitStats{MaxHP: 380, MaxMP: 60, ATK: 45, DEF: 6, Range: 1.2, MoveSpeed: 2.0, AttackFrequency: 1.2, MPGainOnAttack: 12, MPGainOnHit: 6},
			Attack: melee(), Skill: shield(100)},
		{ID: WildDuck, Name: "Wild Duck", Playable: true, Cost: 1, ShopWeight: 4,
			Stats:  UnitStats{MaxHP: 260, MaxMP: 60, ATK: 28, DEF: 3, Range: 3.0, MoveSpeed: 1.7, AttackFrequency: 1.1, MPGainOnAttack: 10, MPGainOnHit: 5},
			Attack: ranged(0.6, 0.8)},
		{ID: Alligator, Name: "Chinese Alligator", Playable: true, Cost: 3, ShopWeight: 2,
			Stats:  UnitStats{MaxHP: 650, MaxMP: 100, ATK: 60, DEF: 15, Range: 1.3, MoveSpeed: 1.0, AttackFrequency: 0.7, MPGainOnAttack: 15, MPGainOnHit: 10},
			Attack: melee(), Skill: stun(2.0)},
		{ID: Crane, Name: "Red-crowned Crane", Playable: true, Cost: 3, ShopWeight: 2,
			Stats:  UnitStats{MaxHP: 420, MaxMP: 80, ATK: 50, DEF: 8, Range: 4.0, MoveSpeed: 1.9, AttackFrequency: 1.0, MPGainOnAttack: 12, MPGainOnHit: 6},
			Attack: ranged(0.8, 1.2), Skill: shield(120)},
		{ID: Sturgeon, Name: "Chinese Sturgeon", Playable: true, Cost: 3, ShopWeight: 1,
			Stats:  UnitStats{MaxHP: 700, MaxMP: 90, ATK: 40, DEF: 20, Range: 1.2, MoveSpeed: 0.9, AttackFrequency: 0.8, MPGainOnAttack: 10, MPGainOnHit: 12},
			Attack: melee(), Skill: shield(120)},
		{ID: BlackStork, Name: "Black Stork", Playable: true, Cost: 2, ShopWeight: 2,
			Stats:  UnitStats{MaxHP: 330, MaxMP: 70, ATK: 38, DEF: 5, Range: 3.5, MoveSpeed: 2.0, AttackFrequency: 1.0, MPGainOnAttack: 10, MPGainOnHit: 5},
			Attack: ranged(0.7, 1.0), Skill: stun(1.5)},

		{ID: RedFox, Name: "Red Fox",
			Stats:  UnitStats{MaxHP: 300, MaxMP: 60, ATK: 35, DEF: 5, Range: 1.2, MoveSpeed: 1.8, AttackFrequency: 1.0, MPGainOnAttack: 10, MPGainOnHit: 5},
			Attack: melee()},
		{ID: RedFoxAlpha, Name: "Alpha Red Fox",
			Stats:  UnitStats{MaxHP: 700, MaxMP: 80, ATK: 55, DEF: 12, Range: 1.4, MoveSpeed: 1.6, AttackFrequency: 1.0, MPGainOnAttack: 12, MPGainOnHit: 8},
			Attack: melee(), Skill: stun(1.5)},
	}

	lib := make(UnitLibrary, len(defs))
	for _, d := range defs {
		lib[d.ID] = d
	}
	return lib
}
