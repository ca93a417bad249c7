// internal/economy/deck.go
package economy

import (
	"fmt"
	"sort"
)

// DeckPool: сколько карт каждого архетипа есть у игрока. Счетчики не
// бывают отрицательными.
type DeckPool struct {
	counts map[string]int
}

func NewDeckPool() *DeckPool {
	return &DeckPool{counts: make(map[string]int)}
}

// Count возвращает число карт архетипа.
func (d *DeckPool) Count(key string) int {
	return d.counts[key]
}

// Add добавляет n карт.
func (d *DeckPool) Add(key string, n int) {
	if n <= 0 || key == "" {
		return
	}
	d.counts[key] += n
}

// Remove убирает до n карт и возвращает, сколько убрано.
func (d *DeckPool) Remove(key string, n int) int {
	have := d.counts[key]
	if n <= 0 || have == 0 {
		return 0
	}
	if n > have {
		n = have
	}
	d.counts[key] = have - n
	if d.counts[key] == 0 {
		delete(d.counts, key)
	}
	return n
}

// Take забирает одну карту или возвращает ErrNoCard.
func (d *DeckPool) Take(key string) error {
	if d.Remove(key, 1) == 0 {
		return fmt.Errorf("%w: %q", ErrNoCard, key)
	}
	return nil
}

// Total возвращает общее число карт.
func (d *DeckPool) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

// HeldKeys возвращает отсортированные архетипы, которых больше нуля.
func (d *DeckPool) HeldKeys() []string {
	keys := make([]string, 0, len(d.counts))
	for k, n := range d.counts {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Snapshot возвращает копию счетчиков.
func (d *DeckPool) Snapshot() map[string]int {
	out := make(map[string]int, len(d.counts))
	for k, n := range d.counts {
		out[k] = n
	}
	return out
}
