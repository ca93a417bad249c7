// internal/state/view.go
package state

import (
	"sort"

	"go-wild-friends/internal/config"
	"go-wild-friends/pkg/geom"
)

// worldCenterX: точка поля, которая рисуется в центре экрана: середина
// между линией игрока и линией появления врагов.
const worldCenterX = config.EnemySpawnOriginX / 2

// worldToScreen переводит координаты поля в пиксели.
func worldToScreen(p geom.Vec2) (float32, float32) {
	x := float64(config.ScreenWidth)/2 + (p.X-worldCenterX)*config.PixelsPerUnit
	y := float64(config.ScreenHeight)/2 + p.Y*config.PixelsPerUnit
	return float32(x), float32(y)
}

// screenToWorld обратное преобразование для кликов мыши.
func screenToWorld(x, y int) geom.Vec2 {
	return geom.Vec2{
		X: (float64(x)-float64(config.ScreenWidth)/2)/config.PixelsPerUnit + worldCenterX,
		Y: (float64(y) - float64(config.ScreenHeight)/2) / config.PixelsPerUnit,
	}
}

// barWidth возвращает ширину заполненной части полоски.
func barWidth(value, max int, full float32) float32 {
	if max <= 0 || value <= 0 {
		return 0
	}
	if value >= max {
		return full
	}
	return full * float32(value) / float32(max)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
