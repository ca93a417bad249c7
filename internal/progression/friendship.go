// internal/progression/friendship.go
package progression

import "sort"

// FriendshipRecord: дружба игрока с архетипом. Level растет только от
// верных ответов, BattleBonus действует до конца сессии.
type FriendshipRecord struct {
	Key         string
	Level       int
	BattleBonus float64
}

// AttackMultiplier возвращает множитель атаки 1+BattleBonus, не ниже нуля.
func (r FriendshipRecord) AttackMultiplier() float64 {
	m := 1 + r.BattleBonus
	if m < 0 {
		return 0
	}
	return m
}

// friendshipTable создается один раз на все ключи, записи не удаляются.
type friendshipTable map[string]*FriendshipRecord

func newFriendshipTable(keys []string) friendshipTable {
	t := make(friendshipTable, len(keys))
	for _, k := range keys {
		t[k] = &FriendshipRecord{Key: k}
	}
	return t
}

func (t friendshipTable) keys() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
