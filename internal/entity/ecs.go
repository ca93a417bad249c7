// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Units       map[types.EntityID]*component.Unit
	Projectiles map[types.EntityID]*component.Projectile
	Flashes     map[types.EntityID]*component.DamageFlash
	Wave        *component.WaveRunState
	Phase       component.GamePhase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Units:       make(map[types.EntityID]*component.Unit),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Flashes:     make(map[types.EntityID]*component.DamageFlash),
		Wave:        nil,
		Phase:       component.PhasePreparation,
	}
}

// NewEntity выдает следующий ID. ID никогда не переиспользуются.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Units, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Flashes, id)
}

// SortedUnitIDs возвращает ID юнитов по возрастанию, чтобы порядок
// обработки не зависел от обхода map.
func (ecs *ECS) SortedUnitIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Units))
	for id := range ecs.Units {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// SortedProjectileIDs возвращает ID снарядов по возрастанию.
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// LiveUnit возвращает юнита, если он существует и не погиб.
func (ecs *ECS) LiveUnit(id types.EntityID) (*component.Unit, bool) {
	u, ok := ecs.Units[id]
	if !ok || u.IsDead() {
		return nil, false
	}
	return u, true
}

// CountAlive считает живых юнитов стороны.
func (ecs *ECS) CountAlive(team component.Team) int {
	n := 0
	for _, u := range ecs.Units {
		if u.Team == team && !u.IsDead() {
			n++
		}
	}
	return n
}

func sortIDs(ids []types.EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
