// internal/system/projectile.go
package system

import (
	"go-wild-friends/internal/component"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// ProjectileSystem ведет снаряды к живой цели и наносит урон при попадании.
type ProjectileSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
	hitRadius    float64
}

func NewProjectileSystem(ecs *entity.ECS, combatSystem *CombatSystem, hitRadius float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:          ecs,
		combatSystem: combatSystem,
		hitRadius:    hitRadius,
	}
}

// Fire создает снаряд. Он долетит за travel секунд, где бы ни была цель.
func (s *ProjectileSystem) Fire(sourceID types.EntityID, origin geom.Vec2, targetID types.EntityID, damage int, travel float64, arc geom.ArcProfile) types.EntityID {
	if arc == nil {
		arc = geom.FlatArc
	}
	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		SourceID: sourceID,
		TargetID: targetID,
		Origin:   origin,
		Damage:   damage,
		Duration: travel,
		Arc:      arc,
	}
	s.ecs.Positions[id] = &component.Position{X: origin.X, Y: origin.Y}
	return id
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.removeProjectile(id)
			continue
		}

		// Цель пропала или погибла: снаряд исчезает без урона
		if _, alive := s.ecs.LiveUnit(proj.TargetID); !alive {
			s.removeProjectile(id)
			continue
		}
		targetPos, ok := s.ecs.Positions[proj.TargetID]
		if !ok {
			s.removeProjectile(id)
			continue
		}

		proj.Elapsed += deltaTime
		t := proj.Progress()
		target := targetPos.Vec()
		next := geom.Lerp(proj.Origin, target, t)
		next.Y -= proj.Arc(t)
		pos.Set(next)

		if t >= 1 || geom.Distance(next, target) <= s.hitRadius {
			s.combatSystem.TakeDamage(proj.TargetID, proj.Damage)
			s.removeProjectile(id)
		}
	}
}

// Clear удаляет все снаряды.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		s.removeProjectile(id)
	}
}

// Count возвращает число летящих снарядов.
func (s *ProjectileSystem) Count() int {
	return len(s.ecs.Projectiles)
}

func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Projectiles, id)
}
