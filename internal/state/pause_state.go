// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-wild-friends/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState: оверлей поверх боя. Пока он сверху, игра не обновляется.
type PauseState struct {
	stateMachine *StateMachine
	face         font.Face
}

func NewPauseState(sm *StateMachine, face font.Face) *PauseState {
	return &PauseState{stateMachine: sm, face: face}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.Pop()
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const pauseText = "PAUSED"
	bounds := text.BoundString(s.face, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, pauseText, s.face, x, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
