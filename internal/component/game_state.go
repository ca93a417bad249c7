// internal/component/game_state.go
package component

// GamePhase: фаза игры. Меняется только методами StateSystem.
type GamePhase int

const (
	PhasePreparation GamePhase = iota
	PhaseBattle
	PhaseVictory
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePreparation:
		return "Preparation"
	case PhaseBattle:
		return "Battle"
	case PhaseVictory:
		return "Victory"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// IsTerminal сообщает, закончилась ли игра.
func (p GamePhase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseGameOver
}
