// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	game "go-wild-friends/internal/app"
	"go-wild-friends/internal/config"
)

var menuLines = []string{
	"WILD FRIENDS",
	"",
	"Deploy wetland animals, beat the fox waves, answer friendship quizzes.",
	"",
	"SPACE to begin",
}

// MenuState: титульный экран. Новая сессия создается при выходе из меню.
type MenuState struct {
	sm   *StateMachine
	opts game.Options
}

func NewMenuState(sm *StateMachine, opts game.Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewBattleState(m.sm, game.NewGame(m.opts)))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(menuLines)*lineHeight/2
	for _, l := range menuLines {
		w := text.BoundString(face, l).Dx()
		text.Draw(screen, l, face, (config.ScreenWidth-w)/2, y, config.TextLightColor)
		y += lineHeight
	}
}

func (m *MenuState) Exit() {}
