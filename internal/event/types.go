// internal/event/types.go
package event

import "go-wild-friends/internal/types"

const (
	UnitDied         EventType = "UnitDied"    // Data: UnitEvent
	UnitRemoved      EventType = "UnitRemoved" // Data: UnitEvent, после паузы на труп
	SkillActivated   EventType = "SkillActivated"
	WaveSpawned      EventType = "WaveSpawned" // Data: WaveEvent
	WaveCleared      EventType = "WaveCleared" // Data: WaveEvent
	AllWavesCleared  EventType = "AllWavesCleared"
	BattleStarted    EventType = "BattleStarted" // Data: WaveEvent
	BattleWon        EventType = "BattleWon"
	BattleLost       EventType = "BattleLost"
	GameVictory      EventType = "GameVictory"
	GameOver         EventType = "GameOver"
	ReadyForNextWave EventType = "ReadyForNextWave"
	QuizStarted      EventType = "QuizStarted"
	QuizAnswered     EventType = "QuizAnswered" // Data: QuizEvent
	QuizCompleted    EventType = "QuizCompleted"
	PhaseChanged     EventType = "PhaseChanged" // Data: PhaseEvent
	GoldChanged      EventType = "GoldChanged"  // Data: int, новый баланс
)

// UnitEvent: данные событий юнита.
type UnitEvent struct {
	ID    types.EntityID
	DefID string
	Team  string
	Skill string
}

// WaveEvent: данные событий волны. Index считается с нуля.
type WaveEvent struct {
	Index int
	Count int
}

// PhaseEvent: смена фазы игры.
type PhaseEvent struct {
	From string
	To   string
}

// QuizEvent: результат ответа на вопрос.
type QuizEvent struct {
	Animal  string
	Correct bool
	Level   int
	Bonus   float64
}
