// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State: экран отладочного просмотрщика.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine хранит стек экранов. Обновляется только верхний,
// рисуются все снизу вверх, так что оверлей видит кадр под собой.
type StateMachine struct {
	stack []State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState заменяет весь стек одним экраном.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.pop()
	}
	if newState != nil {
		sm.Push(newState)
	}
}

// Push кладет оверлей поверх текущего экрана.
func (sm *StateMachine) Push(s State) {
	sm.stack = append(sm.stack, s)
	s.Enter()
}

// Pop снимает верхний экран. Последний экран не снимается.
func (sm *StateMachine) Pop() {
	if len(sm.stack) > 1 {
		sm.pop()
	}
}

func (sm *StateMachine) pop() {
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.Exit()
}

// Current возвращает верхний экран или nil.
func (sm *StateMachine) Current() State {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.Current(); s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	for _, s := range sm.stack {
		s.Draw(screen)
	}
}
