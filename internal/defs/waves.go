package defs

// WaveGroup is one batch of identical enemies inside a wave. SpawnDelay is
// how long, in seconds, the group waits after the previous group before its
// units start acting.
type WaveGroup struct {
	EnemyID    string  `json:"enemy_id"`
	Count      int     `json:"count"`
	SpawnDelay float64 `json:"spawn_delay"`
}

// WaveDefinition describes one wave of enemies.
type WaveDefinition struct {
	Number int         `json:"number"`
	Groups []WaveGroup `json:"groups"`
}

// TotalCount returns the number of enemies across all groups.
func (w WaveDefinition) TotalCount() int {
	n := 0
	for _, g := range w.Groups {
		if g.Count > 0 {
			n += g.Count
		}
	}
	return n
}

// DefaultWaves is the five-wave run used when no wave file is configured.
func DefaultWaves() []WaveDefinition {
	return []WaveDefinition{
		{Number: 1, Groups: []WaveGroup{{EnemyID: RedFox, Count: 1, SpawnDelay: 0.5}}},
		{Number: 2, Groups: []WaveGroup{{EnemyID: RedFox, Count: 2, SpawnDelay: 0.5}}},
		{Number: 3, Groups: []WaveGroup{{EnemyID: RedFox, Count: 3, SpawnDelay: 0.5}}},
		{Number: 4, Groups: []WaveGroup{
			{EnemyID: RedFox, Count: 3, SpawnDelay: 0.5},
			{EnemyID: RedFoxAlpha, Count: 1, SpawnDelay: 1.0},
		}},
		{Number: 5, Groups: []WaveGroup{
			{EnemyID: RedFox, Count: 4, SpawnDelay: 0.5},
			{EnemyID: RedFoxAlpha, Count: 2, SpawnDelay: 1.0},
		}},
	}
}
