// internal/app/snapshot.go
package app

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// UnitSnapshot: состояние одного юнита на поле.
type UnitSnapshot struct {
	ID     uint64  `msgpack:"id"`
	DefID  string  `msgpack:"def"`
	Team   string  `msgpack:"team"`
	State  string  `msgpack:"state"`
	HP     int     `msgpack:"hp"`
	MP     int     `msgpack:"mp"`
	Shield int     `msgpack:"shield"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
}

// FriendshipSnapshot: уровень дружбы и бонус архетипа.
type FriendshipSnapshot struct {
	Key   string  `msgpack:"key"`
	Level int     `msgpack:"level"`
	Bonus float64 `msgpack:"bonus"`
}

// PlacementSnapshot: позиция расстановки игрока.
type PlacementSnapshot struct {
	Key string  `msgpack:"key"`
	X   float64 `msgpack:"x"`
	Y   float64 `msgpack:"y"`
}

// Snapshot: сериализуемый срез сессии для отладки и отчетов.
type Snapshot struct {
	SessionID   string               `msgpack:"session"`
	Tick        int                  `msgpack:"tick"`
	GameTime    float64              `msgpack:"time"`
	Phase       string               `msgpack:"phase"`
	WaveIndex   int                  `msgpack:"wave"`
	Gold        int                  `msgpack:"gold"`
	Lives       int                  `msgpack:"lives"`
	Deck        map[string]int       `msgpack:"deck"`
	Friendships []FriendshipSnapshot `msgpack:"friendships"`
	Placements  []PlacementSnapshot  `msgpack:"placements"`
	Units       []UnitSnapshot       `msgpack:"units"`
}

// Snapshot собирает текущее состояние игры.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		SessionID: g.SessionID,
		Tick:      g.tick,
		GameTime:  g.gameTime,
		Phase:     g.ECS.Phase.String(),
		WaveIndex: g.StateSystem.WaveIndex(),
		Gold:      g.Wallet.Gold(),
		Lives:     g.Wallet.Lives(),
		Deck:      g.Deck.Snapshot(),
	}
	for _, r := range g.Progression.Friendships() {
		s.Friendships = append(s.Friendships, FriendshipSnapshot{Key: r.Key, Level: r.Level, Bonus: r.BattleBonus})
	}
	for _, p := range g.placements {
		s.Placements = append(s.Placements, PlacementSnapshot{Key: p.Key, X: p.Pos.X, Y: p.Pos.Y})
	}
	for _, id := range g.ECS.SortedUnitIDs() {
		u := g.ECS.Units[id]
		us := UnitSnapshot{
			ID:     uint64(id),
			DefID:  u.DefID,
			Team:   u.Team.String(),
			State:  u.State.String(),
			HP:     u.HP,
			MP:     u.MP,
			Shield: u.Shield,
		}
		if pos, ok := g.ECS.Positions[id]; ok {
			us.X, us.Y = pos.X, pos.Y
		}
		s.Units = append(s.Units, us)
	}
	return s
}

// Encode сериализует снимок в msgpack.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot восстанавливает снимок из msgpack.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}
