// internal/component/wave.go
package component

import "go-wild-friends/internal/types"

// WaveRunState хранит состояние текущей волны. Изменяется только WaveSystem.
type WaveRunState struct {
	Index       int
	LiveEnemies []types.EntityID // в порядке появления
	Spawned     int              // сколько врагов реально появилось
	IsSpawning  bool
	Cleared     bool // защелка: победа объявляется один раз за волну
}

// Contains сообщает, числится ли враг в живых.
func (w *WaveRunState) Contains(id types.EntityID) bool {
	for _, e := range w.LiveEnemies {
		if e == id {
			return true
		}
	}
	return false
}
