// internal/app/autopilot.go
package app

import (
	"log"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/progression"
	"go-wild-friends/internal/utils"
	"go-wild-friends/pkg/geom"
)

const (
	autopilotMaxUnits  = 10
	autopilotRowSize   = 5
	autopilotSpacing   = 1.2
	autopilotFrameTime = 1.0 / 60
)

// Autopilot играет сессию без участия человека: покупает карты,
// расставляет их, начинает бои и отвечает на викторины с заданной
// точностью.
type Autopilot struct {
	Game     *Game
	Accuracy float64 // доля верных ответов в [0, 1]

	rng    *utils.PRNGService
	inQuiz bool
}

func NewAutopilot(g *Game, accuracy float64, seed int64) *Autopilot {
	return &Autopilot{Game: g, Accuracy: accuracy, rng: utils.NewPRNGService(seed)}
}

// Report: итог автоматической сессии.
type Report struct {
	SessionID string
	Ticks     int
	GameTime  float64
	Phase     string
	WavesWon  int
	Gold      int
	Lives     int
	Deaths    int
	Skills    int
	Correct   int
	Wrong     int
}

// Run крутит сессию фиксированными кадрами, пока игра не закончится
// или не выйдет maxTicks.
func (a *Autopilot) Run(maxTicks int) Report {
	for i := 0; i < maxTicks && !a.Game.IsOver(); i++ {
		a.Step(autopilotFrameTime)
	}
	if !a.Game.IsOver() {
		log.Printf("Autopilot: stopped after %d ticks in %s", maxTicks, a.Game.Phase())
	}
	return a.Report()
}

// Step принимает решения и продвигает игру на один кадр.
func (a *Autopilot) Step(dt float64) {
	g := a.Game
	switch {
	case g.IsOver():
		return
	case g.Progression.IsQuizActive():
		a.answerQuiz()
	case g.Phase() == component.PhasePreparation && g.StateSystem.IsReadyForNextWave():
		a.inQuiz = false
		a.shop()
		a.deployDeck()
		if err := g.StartBattle(); err != nil {
			log.Printf("Autopilot: cannot start battle: %v", err)
		}
	}
	g.Update(dt)
}

func (a *Autopilot) answerQuiz() {
	if a.inQuiz {
		return
	}
	a.inQuiz = true
	g := a.Game
	if err := g.Progression.OnCardChosen(0); err != nil {
		log.Printf("Autopilot: %v", err)
		return
	}
	card, _ := g.Progression.SelectedCard()
	letter := card.Question.CorrectAnswer
	if a.rng.Float64() >= a.Accuracy {
		letter = wrongLetter(letter, len(card.Question.Options))
	}
	if _, err := g.Progression.OnAnswerSubmitted(letter); err != nil {
		log.Printf("Autopilot: %v", err)
	}
}

// shop покупает все доступные по деньгам предложения.
func (a *Autopilot) shop() {
	g := a.Game
	for slot, key := range g.Shop.Offers() {
		if key == "" {
			continue
		}
		def, ok := g.Units.Get(key)
		if !ok || !g.Wallet.CanAfford(def.Cost) {
			continue
		}
		if _, err := g.Shop.Buy(slot); err != nil {
			log.Printf("Autopilot: %v", err)
		}
	}
}

// deployDeck выставляет карты колоды рядами на стороне игрока.
func (a *Autopilot) deployDeck() {
	g := a.Game
	for _, key := range g.Deck.HeldKeys() {
		for g.Deck.Count(key) > 0 {
			n := len(g.placements)
			if n >= autopilotMaxUnits {
				return
			}
			if _, err := g.Deploy(key, deploySlot(n)); err != nil {
				log.Printf("Autopilot: %v", err)
				break
			}
		}
	}
}

// deploySlot возвращает позицию n-го юнита игрока.
func deploySlot(n int) geom.Vec2 {
	row := n / autopilotRowSize
	col := n % autopilotRowSize
	return geom.Vec2{
		X: -float64(row) * autopilotSpacing,
		Y: float64(col-autopilotRowSize/2) * autopilotSpacing,
	}
}

// wrongLetter возвращает заведомо неверную букву варианта.
func wrongLetter(correct string, options int) string {
	if options < 2 {
		return "?"
	}
	idx := progression.IndexForLetter(correct)
	if idx < 0 {
		return "A"
	}
	return progression.LetterForIndex((idx + 1) % options)
}

// Report собирает итог по журналу и состоянию игры.
func (a *Autopilot) Report() Report {
	g := a.Game
	return Report{
		SessionID: g.SessionID,
		Ticks:     g.Tick(),
		GameTime:  g.GameTime(),
		Phase:     g.Phase().String(),
		WavesWon:  g.Log.Count("wave", "cleared"),
		Gold:      g.Wallet.Gold(),
		Lives:     g.Wallet.Lives(),
		Deaths:    g.Log.Count("unit", "died"),
		Skills:    g.Log.Count("unit", "skill"),
		Correct:   g.Log.Count("quiz", "correct"),
		Wrong:     g.Log.Count("quiz", "wrong"),
	}
}
