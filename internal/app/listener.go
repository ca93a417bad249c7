// internal/app/listener.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/event"
)

var listenedEvents = []event.EventType{
	event.BattleStarted,
	event.PhaseChanged,
	event.UnitDied,
	event.SkillActivated,
	event.WaveSpawned,
	event.WaveCleared,
	event.BattleWon,
	event.BattleLost,
	event.GameVictory,
	event.GameOver,
	event.ReadyForNextWave,
	event.QuizStarted,
	event.QuizAnswered,
	event.QuizCompleted,
	event.GoldChanged,
}

// GameEventListener связывает события систем с расстановкой и журналом.
type GameEventListener struct {
	game   *Game
	quizID string
}

func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.BattleStarted:
		g.spawnPlacedUnits()
		if data, ok := e.Data.(event.WaveEvent); ok {
			l.add("--", "--", "phase", "battle_started", fmt.Sprintf("wave %d, %d placed", data.Index+1, len(g.placements)), float64(data.Index))
		}
	case event.PhaseChanged:
		data, ok := e.Data.(event.PhaseEvent)
		if !ok {
			return
		}
		if data.From == component.PhaseBattle.String() && data.To == component.PhasePreparation.String() {
			g.clearBattlefield()
		}
		l.add("--", "--", "phase", "changed", data.From+" -> "+data.To, 0)
	case event.UnitDied:
		if data, ok := e.Data.(event.UnitEvent); ok {
			l.add(unitLabel(data), data.Team, "unit", "died", data.DefID, 0)
		}
	case event.SkillActivated:
		if data, ok := e.Data.(event.UnitEvent); ok {
			l.add(unitLabel(data), data.Team, "unit", "skill", data.Skill, 0)
		}
	case event.WaveSpawned:
		if data, ok := e.Data.(event.WaveEvent); ok {
			l.add("--", "enemy", "wave", "spawned", fmt.Sprintf("wave %d: %d enemies", data.Index+1, data.Count), float64(data.Count))
		}
	case event.WaveCleared:
		if data, ok := e.Data.(event.WaveEvent); ok {
			l.add("--", "enemy", "wave", "cleared", fmt.Sprintf("wave %d", data.Index+1), float64(data.Index))
		}
	case event.BattleWon:
		l.add("--", "--", "phase", "battle_won", "", 0)
	case event.BattleLost:
		l.add("--", "--", "phase", "battle_lost", fmt.Sprintf("lives %d", g.Wallet.Lives()), float64(g.Wallet.Lives()))
	case event.GameVictory:
		l.add("--", "--", "phase", "victory", "", 0)
	case event.GameOver:
		l.add("--", "--", "phase", "game_over", "", 0)
	case event.ReadyForNextWave:
		if err := g.Shop.Refresh(false); err != nil {
			log.Printf("Game: shop refresh failed: %v", err)
		}
		l.add("--", "--", "phase", "ready", "", 0)
	case event.QuizStarted:
		l.quizID = uuid.New().String()
		l.add("--", "--", "quiz", "started", l.quizID, 0)
	case event.QuizAnswered:
		if data, ok := e.Data.(event.QuizEvent); ok {
			key := "wrong"
			if data.Correct {
				key = "correct"
			}
			l.add(data.Animal, "player", "quiz", key, fmt.Sprintf("%s level %d bonus %.2f", l.quizID, data.Level, data.Bonus), data.Bonus)
		}
	case event.QuizCompleted:
		l.add("--", "--", "quiz", "completed", l.quizID, 0)
	case event.GoldChanged:
		if gold, ok := e.Data.(int); ok {
			l.add("--", "player", "economy", "gold", fmt.Sprintf("%d", gold), float64(gold))
		}
	}
}

func (l *GameEventListener) add(unit, team, category, key, value string, num float64) {
	l.game.Log.Add(l.game.tick, unit, team, category, key, value, num)
}

func unitLabel(data event.UnitEvent) string {
	return fmt.Sprintf("%s#%d", data.DefID, data.ID)
}
