// internal/app/deployment.go
package app

import (
	"errors"
	"fmt"
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/system"
	"go-wild-friends/pkg/geom"
)

// ErrBadSlot возвращается при обращении к несуществующей позиции расстановки.
var ErrBadSlot = errors.New("no such placement slot")

// Placement: юнит игрока, выставленный на поле. В начале каждого боя
// по расстановке создаются живые юниты.
type Placement struct {
	Key string
	Pos geom.Vec2
}

// Deploy ставит юнита архетипа key в точку pos, расходуя одну карту колоды.
// Возвращает номер позиции.
func (g *Game) Deploy(key string, pos geom.Vec2) (int, error) {
	if err := g.canEditPlacements(); err != nil {
		return -1, err
	}
	def, ok := g.Units.Get(key)
	if !ok || !def.Playable {
		return -1, fmt.Errorf("%w: %q", system.ErrUnknownArchetype, key)
	}
	if err := g.Deck.Take(key); err != nil {
		return -1, fmt.Errorf("deploy %s: %w", key, err)
	}

	g.placements = append(g.placements, Placement{Key: key, Pos: pos})
	log.Printf("Game: deployed %s at (%.1f, %.1f)", key, pos.X, pos.Y)
	return len(g.placements) - 1, nil
}

// Undeploy снимает юнита с позиции и возвращает карту в колоду.
func (g *Game) Undeploy(slot int) error {
	if err := g.canEditPlacements(); err != nil {
		return err
	}
	if slot < 0 || slot >= len(g.placements) {
		return fmt.Errorf("%w: %d", ErrBadSlot, slot)
	}

	p := g.placements[slot]
	g.placements = append(g.placements[:slot], g.placements[slot+1:]...)
	g.Deck.Add(p.Key, 1)
	log.Printf("Game: undeployed %s", p.Key)
	return nil
}

// Placements возвращает копию текущей расстановки.
func (g *Game) Placements() []Placement {
	out := make([]Placement, len(g.placements))
	copy(out, g.placements)
	return out
}

// canEditPlacements: расстановка и магазин доступны только в подготовке
// без открытой викторины.
func (g *Game) canEditPlacements() error {
	if g.ECS.Phase != component.PhasePreparation {
		return fmt.Errorf("%w: not allowed during %s", system.ErrInvalidTransition, g.ECS.Phase)
	}
	if g.Progression.IsQuizActive() {
		return system.ErrQuizActive
	}
	return nil
}
