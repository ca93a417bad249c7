// internal/app/battle_log.go
package app

import (
	"fmt"
	"strings"
)

// BattleLogEntry: одна запись журнала боя.
type BattleLogEntry struct {
	Tick     int
	Unit     string  // "otter#12" или "--" для общих событий
	Team     string  // "player", "enemy" или "--"
	Category string  // unit, wave, phase, economy, quiz
	Key      string  // конкретное событие внутри категории
	Value    string  // подробности для человека
	NumVal   float64 // число для проверок в тестах
}

// String форматирует запись строкой фиксированной ширины.
//
//	[T=0042] otter#12       unit     died             hp 0
func (e BattleLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-14s %-8s %-16s %s",
		e.Tick, e.Unit, e.Category, e.Key, e.Value)
}

// BattleLog: неограниченный машиночитаемый журнал событий сессии.
type BattleLog struct {
	entries []BattleLogEntry
}

func NewBattleLog() *BattleLog {
	return &BattleLog{}
}

// Add добавляет запись.
func (bl *BattleLog) Add(tick int, unit, team, category, key, value string, numVal float64) {
	bl.entries = append(bl.entries, BattleLogEntry{
		Tick:     tick,
		Unit:     unit,
		Team:     team,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries возвращает все записи.
func (bl *BattleLog) Entries() []BattleLogEntry {
	return bl.entries
}

// Len возвращает число записей.
func (bl *BattleLog) Len() int {
	return len(bl.entries)
}

// Filter возвращает записи с данными категорией и ключом. Пустая строка
// означает "любое значение".
func (bl *BattleLog) Filter(category, key string) []BattleLogEntry {
	var out []BattleLogEntry
	for _, e := range bl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count считает записи с категорией и ключом.
func (bl *BattleLog) Count(category, key string) int {
	return len(bl.Filter(category, key))
}

// LastOf возвращает последнюю подходящую запись.
func (bl *BattleLog) LastOf(category, key string) (BattleLogEntry, bool) {
	entries := bl.Filter(category, key)
	if len(entries) == 0 {
		return BattleLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry сообщает, есть ли запись, где Value содержит valueSubstr.
func (bl *BattleLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range bl.Filter(category, key) {
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return true
		}
	}
	return false
}

// Format возвращает весь журнал одной строкой.
func (bl *BattleLog) Format() string {
	var sb strings.Builder
	for _, e := range bl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Tail возвращает последние n записей в виде текста.
func (bl *BattleLog) Tail(n int) string {
	start := len(bl.entries) - n
	if start < 0 {
		start = 0
	}
	var sb strings.Builder
	for _, e := range bl.entries[start:] {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
