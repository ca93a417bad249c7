package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance: настраиваемые числа баланса. У каждого поля есть значение
// в DefaultBalance, YAML-файл перечисляет только то, что меняет.
type Balance struct {
	StartingGold  int `yaml:"starting_gold"`
	StartingLives int `yaml:"starting_lives"`
	WinGoldReward int `yaml:"win_gold_reward"`

	Combat     CombatBalance     `yaml:"combat"`
	Friendship FriendshipBalance `yaml:"friendship"`
	Shop       ShopBalance       `yaml:"shop"`
	Spawn      SpawnBalance      `yaml:"spawn"`
}

type CombatBalance struct {
	DeathGrace           float64 `yaml:"death_grace"`
	DetectionRangeFactor float64 `yaml:"detection_range_factor"`
	ProjectileHitRadius  float64 `yaml:"projectile_hit_radius"`
}

type FriendshipBalance struct {
	CorrectBonus     float64 `yaml:"correct_bonus"`
	WrongPenalty     float64 `yaml:"wrong_penalty"`
	CardCount        int     `yaml:"card_count"`
	AnswerCloseDelay float64 `yaml:"answer_close_delay"`
}

// ShopBalance: BenchCapacity 0 снимает ограничение на число карт в колоде.
type ShopBalance struct {
	Slots         int `yaml:"slots"`
	RefreshCost   int `yaml:"refresh_cost"`
	BenchCapacity int `yaml:"bench_capacity"`
}

// SpawnBalance задает сетку появления врагов в единицах поля боя.
type SpawnBalance struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Spacing float64 `yaml:"spacing"`
}

// DefaultBalance возвращает баланс по умолчанию.
func DefaultBalance() Balance {
	return Balance{
		StartingGold:  StartingGold,
		StartingLives: StartingLives,
		WinGoldReward: WinGoldReward,
		Combat: CombatBalance{
			DeathGrace:           DeathGrace,
			DetectionRangeFactor: DetectionRangeFactor,
			ProjectileHitRadius:  ProjectileHitRadius,
		},
		Friendship: FriendshipBalance{
			CorrectBonus:     FriendshipCorrectBonus,
			WrongPenalty:     FriendshipWrongPenalty,
			CardCount:        QuizCardCount,
			AnswerCloseDelay: AnswerCloseDelay,
		},
		Shop: ShopBalance{
			Slots:         ShopSlots,
			RefreshCost:   ShopRefreshCost,
			BenchCapacity: ShopBenchCapacity,
		},
		Spawn: SpawnBalance{
			OriginX: EnemySpawnOriginX,
			OriginY: EnemySpawnOriginY,
			Spacing: EnemySpawnSpacing,
		},
	}
}

// LoadBalance читает YAML-файл баланса поверх DefaultBalance.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("failed to read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return b, fmt.Errorf("invalid balance file %s: %w", path, err)
	}
	return b, nil
}

// Validate отвергает значения, с которыми симуляция не работает.
func (b Balance) Validate() error {
	var errs []error
	if b.StartingLives <= 0 {
		errs = append(errs, errors.New("starting_lives must be > 0"))
	}
	if b.StartingGold < 0 {
		errs = append(errs, errors.New("starting_gold must be >= 0"))
	}
	if b.WinGoldReward < 0 {
		errs = append(errs, errors.New("win_gold_reward must be >= 0"))
	}
	if b.Combat.DeathGrace < 0 {
		errs = append(errs, errors.New("combat.death_grace must be >= 0"))
	}
	if b.Combat.ProjectileHitRadius < 0 {
		errs = append(errs, errors.New("combat.projectile_hit_radius must be >= 0"))
	}
	if b.Friendship.CardCount <= 0 {
		errs = append(errs, errors.New("friendship.card_count must be > 0"))
	}
	if b.Friendship.CorrectBonus < 0 || b.Friendship.WrongPenalty < 0 {
		errs = append(errs, errors.New("friendship bonus and penalty are magnitudes and must be >= 0"))
	}
	if b.Shop.Slots < 0 || b.Shop.RefreshCost < 0 || b.Shop.BenchCapacity < 0 {
		errs = append(errs, errors.New("shop values must be >= 0"))
	}
	if b.Spawn.Spacing <= 0 {
		errs = append(errs, errors.New("spawn.spacing must be > 0"))
	}
	return errors.Join(errs...)
}
