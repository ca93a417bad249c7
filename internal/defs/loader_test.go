package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadUnitDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "units.json", `[
	  {"id": "frog", "name": "Frog", "playable": true, "cost": 1,
	   "stats": {"max_hp": 100, "max_mp": 50, "atk": 10, "def": 2, "range": 1.5,
	             "move_speed": 2, "attack_frequency": 1, "mp_gain_on_attack": 10, "mp_gain_on_hit": 5},
	   "attack": {"style": "MELEE"},
	   "skill": {"kind": "STUN", "name": "Tongue", "duration": 1.5}}
	]`)

	lib, err := LoadUnitDefinitions(path)
	require.NoError(t, err)
	require.Contains(t, lib, "frog")
	frog := lib["frog"]
	assert.Equal(t, 100, frog.Stats.MaxHP)
	require.NotNil(t, frog.Skill)
	assert.Equal(t, SkillStun, frog.Skill.Kind)
	assert.Equal(t, []string{"frog"}, lib.PlayableKeys())
}

func TestLoadUnitDefinitions_RejectsBrokenStats(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "units.json", `[{"id": "ghost", "stats": {"max_hp": 0, "attack_frequency": 0, "range": 1}}]`)

	_, err := LoadUnitDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestLoadWaveDefinitions_UnknownEnemy(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "waves.json", `[{"number": 1, "groups": [{"enemy_id": "dragon", "count": 1}]}]`)

	_, err := LoadWaveDefinitions(path, DefaultUnits())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dragon")
}

func TestLoadQuestionBank_SkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "frog.json", `[{"animal": "frog", "question": "q?", "options": ["a","b","c","d"],
	  "correct_answer": "B", "explanation": "because", "difficulty": 2}]`)

	bank, err := LoadQuestionBank(dir, []string{"frog", "otter"})
	require.NoError(t, err)
	require.Len(t, bank.Questions("frog"), 1)
	assert.Empty(t, bank.Questions("otter"))
	assert.True(t, bank.Questions("frog")[0].IsCorrect(" b "))
}

func TestDefaultDataIsConsistent(t *testing.T) {
	units := DefaultUnits()
	for id, def := range units {
		assert.NoError(t, def.Validate(), id)
	}
	require.NoError(t, ValidateWaves(DefaultWaves(), units))

	bank := DefaultQuestions()
	for _, key := range units.PlayableKeys() {
		assert.NotEmpty(t, bank.Questions(key), "no questions for %s", key)
	}
	assert.Len(t, units.PlayableKeys(), 10)
}
