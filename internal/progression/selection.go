// internal/progression/selection.go
package progression

import (
	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/utils"
)

// difficultyBand: насколько сложнее текущего уровня дружбы вопрос еще
// получает бонусный вес.
const difficultyBand = 3

// QuestionWeight: базовый вес 1 плюс level, если сложность вопроса не
// выше level+3. Ни один вопрос не исключается полностью.
func QuestionWeight(q defs.Question, level int) int {
	weight := 1
	if q.Difficulty <= level+difficultyBand {
		weight += level
	}
	return weight
}

// SelectQuestion выбирает вопрос равновероятно из пула, где каждый
// вопрос повторен столько раз, каков его вес.
func SelectQuestion(questions []defs.Question, level int, prng *utils.PRNGService) (defs.Question, bool) {
	if len(questions) == 0 {
		return defs.Question{}, false
	}
	pool := make([]int, 0, len(questions))
	for i, q := range questions {
		for w := QuestionWeight(q, level); w > 0; w-- {
			pool = append(pool, i)
		}
	}
	return questions[pool[prng.Intn(len(pool))]], true
}

// LetterForIndex переводит индекс варианта в букву ответа: 0 -> "A".
func LetterForIndex(i int) string {
	if i < 0 || i >= 26 {
		return ""
	}
	return string(rune('A' + i))
}

// IndexForLetter обратна LetterForIndex, -1 для неверной буквы.
func IndexForLetter(letter string) int {
	if len(letter) != 1 {
		return -1
	}
	c := letter[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'Z' {
		return -1
	}
	return int(c - 'A')
}
