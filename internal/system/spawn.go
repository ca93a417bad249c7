// internal/system/spawn.go
package system

import (
	"fmt"
	"math"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// SpawnUnit создает юнита архетипа key в позиции pos. atkMultiplier
// умножает атаку (отрицательный множитель считается нулем).
func SpawnUnit(ecs *entity.ECS, lib defs.UnitLibrary, key string, team component.Team, pos geom.Vec2, atkMultiplier float64) (types.EntityID, error) {
	def, ok := lib.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, key)
	}

	unit := component.NewUnit(def, team)
	unit.Stats.ATK = ScaleAttack(def.Stats.ATK, atkMultiplier)

	id := ecs.NewEntity()
	ecs.Units[id] = unit
	ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	return id, nil
}

// ScaleAttack применяет множитель к атаке с округлением, не опускаясь ниже нуля.
func ScaleAttack(atk int, multiplier float64) int {
	if multiplier < 0 {
		multiplier = 0
	}
	scaled := int(math.Round(float64(atk) * multiplier))
	if scaled < 0 {
		return 0
	}
	return scaled
}
