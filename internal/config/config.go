// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth   = 1200
	ScreenHeight  = 800
	MaxDeltaTime  = 0.06
	ClickCooldown = 300 // ms

	// PixelsPerUnit converts battlefield units to screen pixels in the debug view.
	PixelsPerUnit    = 48.0
	UnitRadius       = 12.0
	ProjectileRadius = 4.0

	StartingGold  = 10
	StartingLives = 5
	WinGoldReward = 3

	DeathGrace          = 2.0 // seconds a corpse stays before removal
	AnswerCloseDelay    = 2.0 // seconds the answer result stays up
	DefaultStunDuration = 1.5
	DefaultShieldAmount = 120
	DamageFlashDuration = 0.2

	// DetectionRangeFactor: радиус поиска цели в дальностях атаки.
	// Значение <= 0 снимает ограничение.
	DetectionRangeFactor = 20.0
	ProjectileHitRadius  = 0.25

	FriendshipCorrectBonus = 0.10
	FriendshipWrongPenalty = 0.05
	QuizCardCount          = 3

	ShopSlots         = 5
	ShopRefreshCost   = 1
	ShopBenchCapacity = 8

	EnemySpawnOriginX = 5.0
	EnemySpawnOriginY = 0.0
	EnemySpawnSpacing = 1.5
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	ShieldColor     = color.RGBA{70, 130, 180, 220}
	StunColor       = color.RGBA{255, 215, 0, 255}
	CorpseColor     = color.RGBA{100, 100, 100, 180}
	ProjectileColor = color.RGBA{194, 178, 128, 255}
	HPBarColor      = color.RGBA{50, 255, 50, 255}
	MPBarColor      = color.RGBA{50, 100, 255, 255}

	PhaseColors = []color.RGBA{
		{70, 130, 180, 220},  // preparation
		{220, 60, 60, 220},   // battle
		{255, 215, 0, 255},   // victory
		{128, 128, 128, 255}, // game over
	}
)
