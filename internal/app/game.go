// internal/app/game.go
package app

import (
	"log"

	"github.com/google/uuid"

	"go-wild-friends/internal/component"
	"go-wild-friends/internal/config"
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/economy"
	"go-wild-friends/internal/entity"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/progression"
	"go-wild-friends/internal/system"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/utils"
	"go-wild-friends/pkg/geom"
)

// Options собирает данные и настройки новой сессии.
type Options struct {
	Seed         int64 // 0 означает сид от текущего времени
	Balance      config.Balance
	Units        defs.UnitLibrary
	Waves        []defs.WaveDefinition
	Questions    defs.QuestionProvider
	StartingDeck map[string]int
}

// DefaultOptions возвращает встроенные данные и баланс.
func DefaultOptions() Options {
	return Options{
		Balance:   config.DefaultBalance(),
		Units:     defs.DefaultUnits(),
		Waves:     defs.DefaultWaves(),
		Questions: defs.DefaultQuestions(),
	}
}

// Game holds the main game state and logic.
type Game struct {
	SessionID          string
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	Scheduler          *timer.Scheduler
	Rng                *utils.PRNGService
	Units              defs.UnitLibrary
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	UnitSystem         *system.UnitSystem
	VisualEffectSystem *system.VisualEffectSystem
	WaveSystem         *system.WaveSystem
	StateSystem        *system.StateSystem
	Progression        *progression.Engine
	Wallet             *economy.Wallet
	Deck               *economy.DeckPool
	Shop               *economy.Shop
	Log                *BattleLog
	SpeedMultiplier    float64

	balance    config.Balance
	placements []Placement
	tick       int
	gameTime   float64
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Units == nil {
		panic("units cannot be nil")
	}
	if opts.Questions == nil {
		opts.Questions = defs.QuestionBank{}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	scheduler := timer.NewScheduler()
	rng := utils.NewPRNGService(opts.Seed)
	b := opts.Balance

	g := &Game{
		SessionID:       uuid.New().String(),
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       scheduler,
		Rng:             rng,
		Units:           opts.Units,
		Wallet:          economy.NewWallet(b.StartingGold, b.StartingLives),
		Deck:            economy.NewDeckPool(),
		Log:             NewBattleLog(),
		SpeedMultiplier: 1.0,
		balance:         b,
	}
	for key, n := range opts.StartingDeck {
		g.Deck.Add(key, n)
	}

	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, scheduler)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, scheduler, g.StatusEffectSystem,
		system.NewSkillRegistry(), b.Combat.DeathGrace)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.CombatSystem, b.Combat.ProjectileHitRadius)
	g.CombatSystem.SetProjectileLauncher(g.ProjectileSystem)
	g.UnitSystem = system.NewUnitSystem(ecs, g.CombatSystem, b.Combat.DetectionRangeFactor)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, opts.Units, opts.Waves, system.SpawnLayout{
		Origin:  geom.Vec2{X: b.Spawn.OriginX, Y: b.Spawn.OriginY},
		Spacing: b.Spawn.Spacing,
	})
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher, g.WaveSystem, g.Wallet, b.WinGoldReward)

	g.Progression = progression.NewEngine(opts.Units.PlayableKeys(), opts.Questions, g.Deck, rng, scheduler,
		eventDispatcher, progression.Options{
			CorrectBonus:     b.Friendship.CorrectBonus,
			WrongPenalty:     b.Friendship.WrongPenalty,
			CardCount:        b.Friendship.CardCount,
			AnswerCloseDelay: b.Friendship.AnswerCloseDelay,
		})
	g.StateSystem.SetQuizTrigger(g.Progression)

	g.Shop = economy.NewShop(opts.Units, g.Wallet, g.Deck, rng, b.Shop.Slots, b.Shop.RefreshCost)
	g.Shop.SetBenchCapacity(b.Shop.BenchCapacity)
	g.Shop.SetGate(g.canEditPlacements)
	g.Shop.SetEventDispatcher(eventDispatcher)
	if err := g.Shop.Refresh(false); err != nil {
		log.Printf("Game: initial shop refresh failed: %v", err)
	}

	listener := &GameEventListener{game: g}
	for _, t := range listenedEvents {
		eventDispatcher.Subscribe(t, listener)
	}

	log.Printf("Game: session %s started, seed %d", g.SessionID, opts.Seed)
	return g
}

// Update progresses the game state by one frame. Порядок внутри тика:
// таймеры и эффекты, затем (если викторина закрыта и идет бой) юниты,
// снаряды, проверка волны и проверка поражения.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	dt := deltaTime * g.SpeedMultiplier
	g.tick++
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.Scheduler.Advance(dt)
	g.VisualEffectSystem.Update(dt)

	if g.Progression.IsQuizActive() {
		return
	}
	if g.ECS.Phase != component.PhaseBattle {
		return
	}

	g.UnitSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.WaveSystem.Poll()
	g.StateSystem.CheckBattleStatus()
}

// StartBattle начинает бой с текущей волной.
func (g *Game) StartBattle() error {
	return g.StateSystem.StartBattle()
}

// Tick возвращает номер текущего тика.
func (g *Game) Tick() int { return g.tick }

// GameTime возвращает накопленное игровое время.
func (g *Game) GameTime() float64 { return g.gameTime }

// Phase возвращает текущую фазу игры.
func (g *Game) Phase() component.GamePhase { return g.ECS.Phase }

// IsOver сообщает, закончилась ли игра.
func (g *Game) IsOver() bool { return g.ECS.Phase.IsTerminal() }

// spawnPlacedUnits создает юнитов игрока по расстановке. Атака
// умножается на бонус дружбы архетипа.
func (g *Game) spawnPlacedUnits() {
	for _, p := range g.placements {
		mult := g.Progression.AttackMultiplier(p.Key)
		if _, err := system.SpawnUnit(g.ECS, g.Units, p.Key, component.TeamPlayer, p.Pos, mult); err != nil {
			log.Printf("Game: cannot deploy %s: %v", p.Key, err)
		}
	}
}

// clearBattlefield убирает всех юнитов и снаряды после боя. Расстановка
// сохраняется и повторится в следующем бою.
func (g *Game) clearBattlefield() {
	g.ProjectileSystem.Clear()
	for id := range g.ECS.Units {
		g.Scheduler.CancelOwner(id)
		g.ECS.RemoveEntity(id)
	}
	g.WaveSystem.Clear()
}
