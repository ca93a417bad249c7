package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/economy"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/utils"
)

type recordingPresenter struct {
	cards   []QuizCard
	asked   []QuizCard
	results []bool
	closed  int
}

func (p *recordingPresenter) OnCardsPresented(cards []QuizCard) { p.cards = cards }
func (p *recordingPresenter) OnQuestion(card QuizCard)          { p.asked = append(p.asked, card) }
func (p *recordingPresenter) OnAnswerResult(_ QuizCard, _ string, correct bool) {
	p.results = append(p.results, correct)
}
func (p *recordingPresenter) OnQuizClosed() { p.closed++ }

type engineFixture struct {
	engine    *Engine
	deck      *economy.DeckPool
	scheduler *timer.Scheduler
	presenter *recordingPresenter
	events    []event.EventType
}

func newEngineFixture(t *testing.T, bank defs.QuestionBank) *engineFixture {
	t.Helper()
	keys := defs.DefaultUnits().PlayableKeys()
	f := &engineFixture{
		deck:      economy.NewDeckPool(),
		scheduler: timer.NewScheduler(),
		presenter: &recordingPresenter{},
	}
	dispatcher := event.NewDispatcher()
	for _, et := range []event.EventType{event.QuizStarted, event.QuizAnswered, event.QuizCompleted} {
		dispatcher.SubscribeFunc(et, func(e event.Event) { f.events = append(f.events, e.Type) })
	}
	f.engine = NewEngine(keys, bank, f.deck, utils.NewPRNGService(11), f.scheduler, dispatcher, Options{
		CorrectBonus: 0.1, WrongPenalty: 0.05, CardCount: 3, AnswerCloseDelay: 2,
	})
	f.engine.SetPresenter(f.presenter)
	return f
}

func TestQuestionWeight(t *testing.T) {
	hard := defs.Question{Difficulty: 5}
	assert.Equal(t, 1, QuestionWeight(hard, 0))
	assert.Equal(t, 6, QuestionWeight(hard, 5))
	assert.Equal(t, 1, QuestionWeight(hard, 1))
	assert.Equal(t, 3, QuestionWeight(hard, 2))
}

func TestSelectQuestion_FrequencyFollowsWeights(t *testing.T) {
	questions := []defs.Question{
		{Text: "easy", Difficulty: 1},
		{Text: "hard", Difficulty: 6},
	}
	prng := utils.NewPRNGService(99)

	const trials = 10000
	easy := 0
	for i := 0; i < trials; i++ {
		q, ok := SelectQuestion(questions, 2, prng)
		require.True(t, ok)
		if q.Text == "easy" {
			easy++
		}
	}
	// weights 3:1
	assert.InDelta(t, 0.75, float64(easy)/trials, 0.02)

	_, ok := SelectQuestion(nil, 0, prng)
	assert.False(t, ok)
}

func TestLetters(t *testing.T) {
	assert.Equal(t, "A", LetterForIndex(0))
	assert.Equal(t, "D", LetterForIndex(3))
	assert.Equal(t, "", LetterForIndex(-1))
	assert.Equal(t, 2, IndexForLetter("c"))
	assert.Equal(t, -1, IndexForLetter("?"))
}

func TestEngine_FullQuizFlowCorrectAnswer(t *testing.T) {
	f := newEngineFixture(t, defs.DefaultQuestions())
	done := 0

	require.True(t, f.engine.TriggerQuiz(func() { done++ }))
	assert.True(t, f.engine.IsQuizActive())
	require.Len(t, f.presenter.cards, 3)
	seen := map[string]bool{}
	for _, c := range f.presenter.cards {
		assert.False(t, seen[c.Animal], "cards must be distinct")
		seen[c.Animal] = true
	}

	assert.False(t, f.engine.TriggerQuiz(func() { done += 100 }), "re-entrant trigger is ignored")

	assert.ErrorIs(t, f.engine.OnCardChosen(3), ErrBadCardIndex)
	require.NoError(t, f.engine.OnCardChosen(1))
	card := f.presenter.asked[0]

	correct, err := f.engine.OnAnswerSubmitted(card.Question.CorrectAnswer)
	require.NoError(t, err)
	assert.True(t, correct)

	rec, ok := f.engine.Friendship(card.Animal)
	require.True(t, ok)
	assert.Equal(t, 1, rec.Level)
	assert.InDelta(t, 0.1, rec.BattleBonus, 1e-9)
	assert.InDelta(t, 1.1, f.engine.AttackMultiplier(card.Animal), 1e-9)
	assert.Equal(t, 1, f.deck.Total())

	_, err = f.engine.OnAnswerSubmitted("A")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	f.scheduler.Advance(1.9)
	assert.True(t, f.engine.IsQuizActive())
	assert.Zero(t, done)
	f.scheduler.Advance(0.2)
	assert.False(t, f.engine.IsQuizActive())
	assert.Equal(t, 1, done)
	assert.Equal(t, 1, f.presenter.closed)
	assert.Equal(t, []event.EventType{event.QuizStarted, event.QuizAnswered, event.QuizCompleted}, f.events)
}

func TestEngine_WrongAnswerPenalty(t *testing.T) {
	f := newEngineFixture(t, defs.DefaultQuestions())
	f.deck.Add(defs.Frog, 1)

	require.True(t, f.engine.TriggerQuiz(nil))
	require.NoError(t, f.engine.OnCardChosen(0))
	card, _ := f.engine.SelectedCard()

	wrong := "A"
	if card.Question.IsCorrect(wrong) {
		wrong = "B"
	}
	correct, err := f.engine.OnAnswerSubmitted(wrong)
	require.NoError(t, err)
	assert.False(t, correct)

	rec, _ := f.engine.Friendship(card.Animal)
	assert.Zero(t, rec.Level)
	assert.InDelta(t, -0.05, rec.BattleBonus, 1e-9)
	assert.Zero(t, f.deck.Count(defs.Frog))

	f.engine.Close()
	assert.False(t, f.engine.IsQuizActive())
	f.scheduler.Advance(5)
	assert.Equal(t, 1, f.presenter.closed, "scheduled close must not fire twice")
}

func TestEngine_WrongAnswerWithEmptyDeck(t *testing.T) {
	f := newEngineFixture(t, defs.DefaultQuestions())

	f.engine.ApplyAnswerEffect(defs.Otter, false)
	f.engine.ApplyAnswerEffect(defs.Otter, false)
	assert.Zero(t, f.deck.Total())
	assert.InDelta(t, -0.1, f.engine.BattleBonus(defs.Otter), 1e-9)
}

func TestEngine_BonusIsUncappedAndMultiplierFloorsAtZero(t *testing.T) {
	f := newEngineFixture(t, defs.DefaultQuestions())
	for i := 0; i < 30; i++ {
		f.engine.ApplyAnswerEffect(defs.Crane, false)
	}
	assert.InDelta(t, -1.5, f.engine.BattleBonus(defs.Crane), 1e-9)
	assert.Zero(t, f.engine.AttackMultiplier(defs.Crane))
}

func TestEngine_SkipsArchetypesWithoutQuestions(t *testing.T) {
	bank := defs.QuestionBank{
		defs.Frog: defs.DefaultQuestions()[defs.Frog],
	}
	f := newEngineFixture(t, bank)

	// Только у лягушки есть вопросы, поэтому карта будет одна или ни одной.
	started := false
	for i := 0; i < 20 && !started; i++ {
		started = f.engine.TriggerQuiz(nil)
	}
	require.True(t, started)
	require.Len(t, f.engine.CurrentCards(), 1)
	assert.Equal(t, defs.Frog, f.engine.CurrentCards()[0].Animal)
}

func TestEngine_NoQuestionsAtAll(t *testing.T) {
	f := newEngineFixture(t, defs.QuestionBank{})
	called := false

	assert.False(t, f.engine.TriggerQuiz(func() { called = true }))
	assert.False(t, f.engine.IsQuizActive())
	assert.False(t, called)

	assert.ErrorIs(t, f.engine.OnCardChosen(0), ErrNoQuiz)
	_, err := f.engine.OnAnswerSubmitted("A")
	assert.ErrorIs(t, err, ErrNoQuiz)
}
