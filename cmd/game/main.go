// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-wild-friends/internal/app"
	"go-wild-friends/internal/config"
	"go-wild-friends/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var paths game.DataPaths
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the battle view")
	flag.StringVar(&paths.Balance, "balance", "", "balance YAML file")
	flag.StringVar(&paths.Units, "units", "", "unit definitions JSON file")
	flag.StringVar(&paths.Waves, "waves", "", "wave definitions JSON file")
	flag.StringVar(&paths.Questions, "questions", "", "directory with <archetype>.json question files")
	flag.Parse()

	opts, err := game.LoadOptions(paths, *seed)
	if err != nil {
		log.Fatalf("failed to load game data: %v", err)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewBattleState(sm, game.NewGame(opts)))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wild Friends")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
