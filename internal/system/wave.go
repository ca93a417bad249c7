// internal/system/wave.go
package system

import (
	"fmt"
	"log"
	"math"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/event"
	"go-wild-friends/pkg/geom"
)

// SpawnLayout задает сетку появления врагов.
type SpawnLayout struct {
	Origin  geom.Vec2
	Spacing float64
}

// WaveSystem создает волны врагов и следит за тем, когда волна зачищена.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	units           defs.UnitLibrary
	waves           []defs.WaveDefinition
	layout          SpawnLayout
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, units defs.UnitLibrary,
	waves []defs.WaveDefinition, layout SpawnLayout) *WaveSystem {
	if len(waves) == 0 {
		log.Println("WaveSystem: no waves configured, using defaults")
		waves = defs.DefaultWaves()
	}
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		units:           units,
		waves:           waves,
		layout:          layout,
	}
}

// Count возвращает число волн.
func (s *WaveSystem) Count() int {
	return len(s.waves)
}

// IsLastWave сообщает, последняя ли это волна.
func (s *WaveSystem) IsLastWave(index int) bool {
	return index >= len(s.waves)-1
}

// Current возвращает состояние текущей волны или nil.
func (s *WaveSystem) Current() *component.WaveRunState {
	return s.ecs.Wave
}

// SpawnWave создает все отряды волны index. Индекс за последней волной
// означает, что волны кончились.
func (s *WaveSystem) SpawnWave(index int) error {
	if s.ecs.Wave != nil && s.ecs.Wave.IsSpawning {
		log.Printf("WaveSystem: wave %d is still spawning, ignoring spawn of %d", s.ecs.Wave.Index, index)
		return ErrAlreadySpawning
	}
	if index < 0 {
		return fmt.Errorf("wave index %d out of range", index)
	}
	if index >= len(s.waves) {
		log.Println("WaveSystem: all waves cleared")
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCleared})
		return nil
	}

	wave := s.waves[index]
	state := &component.WaveRunState{Index: index, IsSpawning: true}
	s.ecs.Wave = state

	positions := GridPositions(wave.TotalCount(), s.layout)
	slot := 0
	wakeDelay := 0.0
	for _, group := range wave.Groups {
		wakeDelay += group.SpawnDelay
		for i := 0; i < group.Count; i++ {
			pos := s.layout.Origin
			if slot < len(positions) {
				pos = positions[slot]
			}
			slot++
			id, err := SpawnUnit(s.ecs, s.units, group.EnemyID, component.TeamEnemy, pos, 1)
			if err != nil {
				log.Printf("WaveSystem: wave %d: %v, skipping group", wave.Number, err)
				slot += group.Count - i - 1
				break
			}
			s.ecs.Units[id].WakeTimer = wakeDelay
			state.LiveEnemies = append(state.LiveEnemies, id)
		}
	}
	state.IsSpawning = false
	state.Spawned = len(state.LiveEnemies)

	if state.Spawned == 0 {
		log.Printf("WaveSystem: config error: wave %d spawned no enemies, check its groups", wave.Number)
	}
	log.Printf("WaveSystem: wave %d spawned %d enemies", wave.Number, len(state.LiveEnemies))
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveSpawned, Data: event.WaveEvent{Index: index, Count: len(state.LiveEnemies)}})
	return nil
}

// Poll убирает из списка живых погибших и удаленных врагов и один раз
// объявляет волну зачищенной, когда список пуст.
func (s *WaveSystem) Poll() {
	state := s.ecs.Wave
	if state == nil || state.IsSpawning || state.Cleared {
		return
	}

	alive := state.LiveEnemies[:0]
	for _, id := range state.LiveEnemies {
		if _, ok := s.ecs.LiveUnit(id); ok {
			alive = append(alive, id)
		}
	}
	state.LiveEnemies = alive

	if len(state.LiveEnemies) == 0 {
		state.Cleared = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveEvent{Index: state.Index}})
	}
}

// Clear удаляет оставшихся врагов волны и сбрасывает состояние.
func (s *WaveSystem) Clear() {
	for id, unit := range s.ecs.Units {
		if unit.Team == component.TeamEnemy {
			s.ecs.RemoveEntity(id)
		}
	}
	s.ecs.Wave = nil
}

// GridPositions раскладывает n врагов сеткой: rows = ceil(sqrt(n)),
// cols = ceil(n/rows), ряды центрированы по вертикали относительно Origin.
func GridPositions(n int, layout SpawnLayout) []geom.Vec2 {
	if n <= 0 {
		return nil
	}
	rows := int(math.Ceil(math.Sqrt(float64(n))))
	cols := int(math.Ceil(float64(n) / float64(rows)))
	positions := make([]geom.Vec2, n)
	for i := 0; i < n; i++ {
		row := i / cols
		col := i % cols
		positions[i] = geom.Vec2{
			X: layout.Origin.X + float64(col)*layout.Spacing,
			Y: layout.Origin.Y + (float64(row)-float64(rows)/2)*layout.Spacing,
		}
	}
	return positions
}
