// internal/component/projectile.go
package component

import (
	"go-wild-friends/internal/types"
	"go-wild-friends/pkg/geom"
)

// Projectile представляет летящий снаряд. Снаряд летит к текущей
// позиции цели по времени, а не по скорости.
type Projectile struct {
	SourceID types.EntityID
	TargetID types.EntityID
	Origin   geom.Vec2
	Damage   int
	Duration float64 // время полета в секундах
	Elapsed  float64
	Arc      geom.ArcProfile
}

// Progress возвращает долю пройденного пути в [0, 1].
func (p *Projectile) Progress() float64 {
	if p.Duration <= 0 {
		return 1
	}
	return geom.Clamp01(p.Elapsed / p.Duration)
}
