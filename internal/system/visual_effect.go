// internal/system/visual_effect.go
package system

import (
	"go-wild-friends/internal/entity"
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки урона.
// Работает в любой фазе, чтобы вспышки гасли и после боя.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update продвигает таймеры вспышек и удаляет завершенные.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.ecs.Flashes, id)
		}
	}
}
