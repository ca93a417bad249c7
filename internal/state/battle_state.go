// internal/state/battle_state.go
package state

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	game "go-wild-friends/internal/app"
	"go-wild-friends/internal/component"
	"go-wild-friends/internal/config"
	"go-wild-friends/internal/progression"
	"go-wild-friends/internal/ui"
	"go-wild-friends/pkg/geom"
)

const (
	lineHeight = 16
	hudX       = 12
	barW       = 30
	barH       = 4
)

var (
	cardKeys   = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}
	answerKeys = []ebiten.Key{ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD}
	shopKeys   = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5}
)

// BattleState: основной экран: поле боя, HUD и окно викторины.
type BattleState struct {
	sm       *StateMachine
	game     *game.Game
	face     font.Face
	roster   []string
	selected int    // архетип для расстановки
	message  string // последняя подсказка или результат ответа

	indicator *ui.StateIndicator
	speed     *ui.SpeedButton
	wave      *ui.WaveIndicator
}

var _ State = (*BattleState)(nil)
var _ progression.Presenter = (*BattleState)(nil)

func NewBattleState(sm *StateMachine, g *game.Game) *BattleState {
	bs := &BattleState{
		sm:     sm,
		game:   g,
		face:   basicfont.Face7x13,
		roster: g.Units.PlayableKeys(),

		indicator: ui.NewStateIndicator(config.ScreenWidth-30, 30, 14),
		speed: ui.NewSpeedButton(config.ScreenWidth-80, 30, 10, []float64{1, 2, 4},
			[]color.RGBA{config.PlayerColor, config.StunColor, config.EnemyColor}),
		wave: ui.NewWaveIndicator(config.ScreenWidth/2, 30, config.TextLightColor, config.EnemyColor),
	}
	g.Progression.SetPresenter(bs)
	return bs
}

func (s *BattleState) Enter() {}

func (s *BattleState) Exit() {}

func (s *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.Push(NewPauseState(s.sm, s.face))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.game.SpeedMultiplier = s.speed.ToggleState()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.speed.IsClicked(x, y) {
			s.game.SpeedMultiplier = s.speed.ToggleState()
			s.game.Update(deltaTime)
			return
		}
		if s.indicator.IsClicked(x, y) {
			s.indicator.HandleClick()
			if err := s.game.StartBattle(); err != nil {
				s.message = err.Error()
			}
			s.game.Update(deltaTime)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.copyLog()
	}

	if s.game.Progression.IsQuizActive() {
		s.handleQuizInput()
	} else if s.game.Phase() == component.PhasePreparation {
		s.handlePreparationInput()
	}

	s.game.Update(deltaTime)
}

func (s *BattleState) handleQuizInput() {
	if _, chosen := s.game.Progression.SelectedCard(); !chosen {
		for i, k := range cardKeys {
			if inpututil.IsKeyJustPressed(k) {
				if err := s.game.Progression.OnCardChosen(i); err != nil {
					s.message = err.Error()
				}
			}
		}
		return
	}
	for i, k := range answerKeys {
		if inpututil.IsKeyJustPressed(k) {
			if _, err := s.game.Progression.OnAnswerSubmitted(progression.LetterForIndex(i)); err != nil {
				s.message = err.Error()
			}
		}
	}
}

func (s *BattleState) handlePreparationInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := s.game.StartBattle(); err != nil {
			s.message = err.Error()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && len(s.roster) > 0 {
		s.selected = (s.selected + 1) % len(s.roster)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && len(s.roster) > 0 {
		s.selected = (s.selected + len(s.roster) - 1) % len(s.roster)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.game.Shop.Refresh(true); err != nil {
			s.message = err.Error()
		}
	}
	for i, k := range shopKeys {
		if inpututil.IsKeyJustPressed(k) {
			if key, err := s.game.Shop.Buy(i); err != nil {
				s.message = err.Error()
			} else {
				s.message = "bought " + key
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && len(s.roster) > 0 {
		pos := screenToWorld(ebiten.CursorPosition())
		if _, err := s.game.Deploy(s.roster[s.selected], pos); err != nil {
			s.message = err.Error()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.undeployNearest(screenToWorld(ebiten.CursorPosition()))
	}
}

func (s *BattleState) undeployNearest(pos geom.Vec2) {
	best, bestDist := -1, config.UnitRadius/config.PixelsPerUnit*2
	for i, p := range s.game.Placements() {
		if d := geom.Distance(p.Pos, pos); d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	if err := s.game.Undeploy(best); err != nil {
		s.message = err.Error()
	}
}

func (s *BattleState) copyLog() {
	if err := clipboard.WriteAll(s.game.Log.Format()); err != nil {
		log.Printf("BattleState: clipboard copy failed: %v", err)
		s.message = "clipboard unavailable"
		return
	}
	s.message = fmt.Sprintf("copied %d log entries", s.game.Log.Len())
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawPlacements(screen)
	s.drawUnits(screen)
	s.drawProjectiles(screen)
	s.drawHUD(screen)
	if s.game.Progression.IsQuizActive() {
		s.drawQuiz(screen)
	}
}

func (s *BattleState) drawPlacements(screen *ebiten.Image) {
	if s.game.Phase() != component.PhasePreparation {
		return
	}
	for _, p := range s.game.Placements() {
		x, y := worldToScreen(p.Pos)
		vector.StrokeCircle(screen, x, y, config.UnitRadius, 1.5, config.PlayerColor, true)
		text.Draw(screen, p.Key, s.face, int(x)-config.UnitRadius, int(y)+config.UnitRadius+lineHeight, config.TextLightColor)
	}
}

func (s *BattleState) drawUnits(screen *ebiten.Image) {
	ecs := s.game.ECS
	for _, id := range ecs.SortedUnitIDs() {
		u := ecs.Units[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := worldToScreen(pos.Vec())

		var c color.Color = config.PlayerColor
		if u.Team == component.TeamEnemy {
			c = config.EnemyColor
		}
		switch {
		case u.IsDead():
			c = config.CorpseColor
		case u.WakeTimer > 0:
			c = withAlpha(c, 90)
		}
		vector.DrawFilledCircle(screen, x, y, config.UnitRadius, c, true)
		if u.State == component.UnitStunned {
			vector.StrokeCircle(screen, x, y, config.UnitRadius+3, 2, config.StunColor, true)
		}
		if flash, ok := ecs.Flashes[id]; ok {
			vector.StrokeCircle(screen, x, y, config.UnitRadius+1, 2, color.NRGBA{255, 255, 255, uint8(255 * flash.Intensity())}, true)
		}
		if u.Shield > 0 {
			vector.StrokeCircle(screen, x, y, config.UnitRadius+6, 1.5, config.ShieldColor, true)
		}
		if u.IsDead() {
			continue
		}

		left := x - barW/2
		top := y - config.UnitRadius - 12
		vector.DrawFilledRect(screen, left, top, barW, barH, config.CorpseColor, false)
		vector.DrawFilledRect(screen, left, top, barWidth(u.HP, u.Stats.MaxHP, barW), barH, config.HPBarColor, false)
		vector.DrawFilledRect(screen, left, top+barH+1, barWidth(u.MP, u.Stats.MaxMP, barW), barH, config.MPBarColor, false)
	}
}

func (s *BattleState) drawProjectiles(screen *ebiten.Image) {
	ecs := s.game.ECS
	for _, id := range ecs.SortedProjectileIDs() {
		p := ecs.Projectiles[id]
		target, ok := ecs.Positions[p.TargetID]
		if !ok {
			continue
		}
		t := p.Progress()
		x, y := worldToScreen(geom.Lerp(p.Origin, target.Vec(), t))
		if p.Arc != nil {
			y -= float32(p.Arc(t) * config.PixelsPerUnit)
		}
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (s *BattleState) drawHUD(screen *ebiten.Image) {
	g := s.game
	phase := g.Phase()
	if int(phase) < len(config.PhaseColors) {
		s.indicator.Draw(screen, config.PhaseColors[phase])
	}
	s.speed.Draw(screen)
	s.wave.Draw(screen, s.face, g.StateSystem.WaveIndex()+1, g.WaveSystem.Count())

	lines := []string{
		fmt.Sprintf("%s  wave %d/%d  gold %d  lives %d  x%.0f",
			phase, g.StateSystem.WaveIndex()+1, g.WaveSystem.Count(), g.Wallet.Gold(), g.Wallet.Lives(), g.SpeedMultiplier),
		"deck: " + formatDeck(g.Deck.Snapshot()),
		"shop: " + strings.Join(g.Shop.Offers(), ", "),
	}
	if phase == component.PhasePreparation && len(s.roster) > 0 {
		key := s.roster[s.selected]
		lines = append(lines, fmt.Sprintf("deploy: < %s > (x%.2f atk)  click place, right click remove, SPACE battle",
			key, g.Progression.AttackMultiplier(key)))
	}
	lines = append(lines, "TAB speed  P pause  R refresh  F1-F5 buy  L copy log")
	if s.message != "" {
		lines = append(lines, s.message)
	}
	for i, l := range lines {
		text.Draw(screen, l, s.face, hudX, lineHeight*(i+1), config.TextLightColor)
	}

	tail := strings.Split(strings.TrimRight(g.Log.Tail(6), "\n"), "\n")
	for i, l := range tail {
		text.Draw(screen, l, s.face, hudX, config.ScreenHeight-lineHeight*(len(tail)-i), config.TextLightColor)
	}
}

func (s *BattleState) drawQuiz(screen *ebiten.Image) {
	const w, h = 640, 260
	left := float32(config.ScreenWidth-w) / 2
	top := float32(config.ScreenHeight-h) / 2
	vector.DrawFilledRect(screen, left, top, w, h, color.RGBA{10, 12, 20, 235}, false)
	vector.StrokeRect(screen, left, top, w, h, 1, config.PhaseColors[component.PhasePreparation], false)

	x := int(left) + 16
	y := int(top) + 24
	card, chosen := s.game.Progression.SelectedCard()
	if !chosen {
		text.Draw(screen, "Friendship quiz: pick a card", s.face, x, y, config.TextLightColor)
		for i, c := range s.game.Progression.CurrentCards() {
			y += lineHeight * 2
			text.Draw(screen, fmt.Sprintf("[%d] %s  difficulty %d", i+1, c.Animal, c.Difficulty), s.face, x, y, config.TextLightColor)
		}
		return
	}

	text.Draw(screen, card.Animal+": "+card.Question.Text, s.face, x, y, config.TextLightColor)
	for i, opt := range card.Question.Options {
		y += lineHeight * 2
		text.Draw(screen, fmt.Sprintf("[%s] %s", progression.LetterForIndex(i), opt), s.face, x, y, config.TextLightColor)
	}
	if s.message != "" {
		text.Draw(screen, s.message, s.face, x, int(top)+h-16, config.StunColor)
	}
}

// OnCardsPresented и остальные методы progression.Presenter.
func (s *BattleState) OnCardsPresented(cards []progression.QuizCard) {
	s.message = fmt.Sprintf("quiz: %d cards", len(cards))
}

func (s *BattleState) OnQuestion(card progression.QuizCard) {
	s.message = ""
}

func (s *BattleState) OnAnswerResult(card progression.QuizCard, letter string, correct bool) {
	if correct {
		s.message = "Correct! " + card.Question.Explanation
		return
	}
	s.message = fmt.Sprintf("Wrong, the answer was %s. %s", card.Question.CorrectAnswer, card.Question.Explanation)
}

func (s *BattleState) OnQuizClosed() {
	s.message = ""
}

func formatDeck(deck map[string]int) string {
	if len(deck) == 0 {
		return "empty"
	}
	parts := make([]string, 0, len(deck))
	for _, key := range sortedKeys(deck) {
		parts = append(parts, fmt.Sprintf("%s x%d", key, deck[key]))
	}
	return strings.Join(parts, ", ")
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
