package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBalanceIsValid(t *testing.T) {
	require.NoError(t, DefaultBalance().Validate())
}

func TestLoadBalance_OverridesOnlyListedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	yml := `
starting_gold: 25
combat:
  death_grace: 0.5
friendship:
  correct_bonus: 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	b, err := LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 25, b.StartingGold)
	assert.Equal(t, 0.5, b.Combat.DeathGrace)
	assert.Equal(t, 0.2, b.Friendship.CorrectBonus)

	assert.Equal(t, StartingLives, b.StartingLives)
	assert.Equal(t, FriendshipWrongPenalty, b.Friendship.WrongPenalty)
	assert.Equal(t, EnemySpawnSpacing, b.Spawn.Spacing)
}

func TestLoadBalance_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("starting_lives: 0\n"), 0o644))

	_, err := LoadBalance(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_lives")
}

func TestLoadBalance_MissingFile(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadBalance_BenchCapacity(t *testing.T) {
	assert.Equal(t, ShopBenchCapacity, DefaultBalance().Shop.BenchCapacity)

	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shop:\n  bench_capacity: 0\n"), 0o644))
	b, err := LoadBalance(path)
	require.NoError(t, err)
	assert.Zero(t, b.Shop.BenchCapacity)
	assert.Equal(t, ShopSlots, b.Shop.Slots)

	require.NoError(t, os.WriteFile(path, []byte("shop:\n  bench_capacity: -1\n"), 0o644))
	_, err = LoadBalance(path)
	assert.Error(t, err)
}
