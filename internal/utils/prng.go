// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-wild-friends/internal/defs"
)

// PRNGService оборачивает генератор случайных чисел, чтобы весь бой
// можно было воспроизвести по одному сиду.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Shuffle перемешивает срез ключей на месте (Фишер-Йетс).
func (s *PRNGService) Shuffle(keys []string) {
	s.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
}

// PickDistinct выбирает до n различных ключей без возвращения.
// Исходный срез не изменяется.
func (s *PRNGService) PickDistinct(keys []string, n int) []string {
	if n <= 0 || len(keys) == 0 {
		return nil
	}
	pool := make([]string, len(keys))
	copy(pool, keys)
	s.Shuffle(pool)
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// Choose возвращает случайный ключ или пустую строку для пустого среза.
func (s *PRNGService) Choose(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[s.Intn(len(keys))]
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы.
// Суммирует веса, выбирает число в этом диапазоне и находит элемент,
// которому оно соответствует.
func (s *PRNGService) ChooseWeighted(entries []defs.WeightedKey) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		return entries[0].Key
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Key
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Key
}
