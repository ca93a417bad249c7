// internal/system/targeting.go
package system

import (
	"math"

	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// rangeEpsilon гасит ошибку округления после подхода ровно на дальность атаки.
const rangeEpsilon = 1e-6

// FindNearestEnemy ищет ближайшего живого юнита противоположной стороны в
// радиусе Range*detectionFactor (detectionFactor <= 0 снимает ограничение).
// При равном расстоянии выбирается меньший ID. Полный перебор: O(n) на вызов.
func FindNearestEnemy(ecs *entity.ECS, selfID types.EntityID, detectionFactor float64) (types.EntityID, bool) {
	self, ok := ecs.LiveUnit(selfID)
	if !ok {
		return 0, false
	}
	selfPos, ok := ecs.Positions[selfID]
	if !ok {
		return 0, false
	}

	maxDist := math.Inf(1)
	if detectionFactor > 0 {
		maxDist = self.Stats.Range * detectionFactor
	}

	opponent := self.Team.Opponent()
	var nearest types.EntityID
	minDistance := math.MaxFloat64
	found := false
	for _, id := range ecs.SortedUnitIDs() {
		other := ecs.Units[id]
		if id == selfID || other.Team != opponent || other.IsDead() {
			continue
		}
		otherPos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		distance := geom.Distance(selfPos.Vec(), otherPos.Vec())
		if distance > maxDist {
			continue
		}
		// Обход по возрастанию ID, строгое сравнение оставляет меньший ID.
		if distance < minDistance {
			minDistance = distance
			nearest = id
			found = true
		}
	}
	return nearest, found
}

// InAttackRange сообщает, достает ли атакующий до цели.
func InAttackRange(ecs *entity.ECS, attackerID, targetID types.EntityID) bool {
	attacker, ok := ecs.Units[attackerID]
	if !ok {
		return false
	}
	from, ok1 := ecs.Positions[attackerID]
	to, ok2 := ecs.Positions[targetID]
	if !ok1 || !ok2 {
		return false
	}
	return geom.Distance(from.Vec(), to.Vec()) <= attacker.Stats.Range+rangeEpsilon
}
