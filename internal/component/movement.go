// internal/component/movement.go
package component

import "go-wild-friends/pkg/geom"

// Position: компонент позиции в мировых единицах.
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор.
func (p Position) Vec() geom.Vec2 {
	return geom.Vec2{X: p.X, Y: p.Y}
}

// Set записывает вектор в позицию.
func (p *Position) Set(v geom.Vec2) {
	p.X, p.Y = v.X, v.Y
}
