// internal/system/state.go
package system

import (
	"fmt"
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/economy"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/event"
)

// QuizTrigger запускает послебоевую викторину. TriggerQuiz возвращает
// false, если викторина не началась; тогда onDone не будет вызван.
type QuizTrigger interface {
	TriggerQuiz(onDone func()) bool
	IsQuizActive() bool
}

// StateSystem: конечный автомат фаз игры:
// Preparation -> Battle -> Preparation | Victory | GameOver.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	waveSystem      *WaveSystem
	wallet          *economy.Wallet
	quiz            QuizTrigger
	winReward       int
	waveIndex       int
	ready           bool
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, waveSystem *WaveSystem,
	wallet *economy.Wallet, winReward int) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		waveSystem:      waveSystem,
		wallet:          wallet,
		winReward:       winReward,
		ready:           true,
	}
	ecs.Phase = component.PhasePreparation
	eventDispatcher.Subscribe(event.WaveCleared, ss)
	eventDispatcher.Subscribe(event.AllWavesCleared, ss)
	return ss
}

// SetQuizTrigger подключает викторину после боя.
func (s *StateSystem) SetQuizTrigger(quiz QuizTrigger) {
	s.quiz = quiz
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveCleared:
		s.OnBattleWin()
	case event.AllWavesCleared:
		s.OnGameVictory()
	}
}

// StartBattle начинает бой с текущей волной.
func (s *StateSystem) StartBattle() error {
	if s.ecs.Phase != component.PhasePreparation {
		log.Printf("StateSystem: cannot start battle during %s", s.ecs.Phase)
		return fmt.Errorf("%w: start battle during %s", ErrInvalidTransition, s.ecs.Phase)
	}
	if s.quiz != nil && s.quiz.IsQuizActive() {
		log.Println("StateSystem: cannot start battle while the quiz is open")
		return ErrQuizActive
	}

	s.setPhase(component.PhaseBattle)
	s.ready = false
	s.eventDispatcher.Dispatch(event.Event{Type: event.BattleStarted, Data: event.WaveEvent{Index: s.waveIndex}})
	return s.waveSystem.SpawnWave(s.waveIndex)
}

// OnBattleWin начисляет награду и переходит к следующей волне или к победе.
// За волну, в которой не появилось ни одного врага, награды нет.
func (s *StateSystem) OnBattleWin() error {
	if s.ecs.Phase != component.PhaseBattle {
		return fmt.Errorf("%w: battle win during %s", ErrInvalidTransition, s.ecs.Phase)
	}
	if wave := s.waveSystem.Current(); wave != nil && wave.Spawned == 0 {
		log.Printf("StateSystem: wave %d had no enemies, no reward", wave.Index)
	} else {
		s.AddGold(s.winReward)
	}

	if s.waveSystem.IsLastWave(s.waveIndex) {
		s.OnGameVictory()
		return nil
	}

	s.waveIndex++
	s.setPhase(component.PhasePreparation)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BattleWon, Data: event.WaveEvent{Index: s.waveIndex - 1}})
	s.afterBattle()
	return nil
}

// OnBattleLose снимает жизнь. Без жизней игра окончена, иначе волна
// повторяется.
func (s *StateSystem) OnBattleLose() error {
	if s.ecs.Phase != component.PhaseBattle {
		return fmt.Errorf("%w: battle loss during %s", ErrInvalidTransition, s.ecs.Phase)
	}
	s.waveSystem.Clear()

	if s.wallet.LoseLife() == 0 {
		s.setPhase(component.PhaseGameOver)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		return nil
	}

	s.setPhase(component.PhasePreparation)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BattleLost, Data: event.WaveEvent{Index: s.waveIndex}})
	s.afterBattle()
	return nil
}

// CheckBattleStatus засчитывает поражение, если у игрока не осталось живых юнитов.
func (s *StateSystem) CheckBattleStatus() {
	if s.ecs.Phase != component.PhaseBattle {
		return
	}
	if s.ecs.CountAlive(component.TeamPlayer) == 0 {
		log.Println("StateSystem: no player units left")
		s.OnBattleLose()
	}
}

// OnGameVictory завершает игру победой из любой нетерминальной фазы.
func (s *StateSystem) OnGameVictory() {
	if s.ecs.Phase.IsTerminal() {
		return
	}
	s.setPhase(component.PhaseVictory)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameVictory})
}

// afterBattle открывает викторину. Готовность к следующей волне
// объявляется только после ее закрытия.
func (s *StateSystem) afterBattle() {
	if s.quiz != nil && s.quiz.TriggerQuiz(s.markReady) {
		return
	}
	s.markReady()
}

func (s *StateSystem) markReady() {
	s.ready = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.ReadyForNextWave, Data: event.WaveEvent{Index: s.waveIndex}})
}

func (s *StateSystem) setPhase(phase component.GamePhase) {
	from := s.ecs.Phase
	if from == phase {
		return
	}
	s.ecs.Phase = phase
	log.Printf("StateSystem: %s -> %s", from, phase)
	s.eventDispatcher.Dispatch(event.Event{Type: event.PhaseChanged, Data: event.PhaseEvent{From: from.String(), To: phase.String()}})
}

// AddGold начисляет золото.
func (s *StateSystem) AddGold(amount int) {
	s.wallet.AddGold(amount)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: s.wallet.Gold()})
}

// SpendGold списывает золото или возвращает economy.ErrInsufficientGold.
func (s *StateSystem) SpendGold(amount int) error {
	if err := s.wallet.SpendGold(amount); err != nil {
		return err
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: s.wallet.Gold()})
	return nil
}

func (s *StateSystem) Gold() int                  { return s.wallet.Gold() }
func (s *StateSystem) Lives() int                 { return s.wallet.Lives() }
func (s *StateSystem) Phase() component.GamePhase { return s.ecs.Phase }
func (s *StateSystem) WaveIndex() int             { return s.waveIndex }

// IsReadyForNextWave сообщает, закрыта ли послебоевая викторина.
func (s *StateSystem) IsReadyForNextWave() bool { return s.ready }
