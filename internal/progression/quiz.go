// internal/progression/quiz.go
package progression

import (
	"errors"
	"fmt"
	"log"

	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/economy"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/timer"
	"go-wild-friends/internal/utils"
)

var (
	ErrNoQuiz          = errors.New("no quiz is active")
	ErrBadCardIndex    = errors.New("card index out of range")
	ErrNoCardChosen    = errors.New("no card chosen yet")
	ErrAlreadyAnswered = errors.New("question already answered")
)

// QuizCard: карта на выбор, архетип и вопрос о нем.
type QuizCard struct {
	Animal     string
	Difficulty int
	Question   defs.Question
}

// Presenter показывает викторину. Ядро ничего не рисует само.
type Presenter interface {
	OnCardsPresented(cards []QuizCard)
	OnQuestion(card QuizCard)
	OnAnswerResult(card QuizCard, letter string, correct bool)
	OnQuizClosed()
}

// NopPresenter ничего не показывает.
type NopPresenter struct{}

func (NopPresenter) OnCardsPresented([]QuizCard)           {}
func (NopPresenter) OnQuestion(QuizCard)                   {}
func (NopPresenter) OnAnswerResult(QuizCard, string, bool) {}
func (NopPresenter) OnQuizClosed()                         {}

// Options: числа прогрессии.
type Options struct {
	CorrectBonus     float64
	WrongPenalty     float64
	CardCount        int
	AnswerCloseDelay float64
}

// Engine проводит викторину после боя и хранит дружбу с архетипами.
// Пока IsQuizActive, бой не продвигается.
type Engine struct {
	friendships     friendshipTable
	questions       defs.QuestionProvider
	deck            *economy.DeckPool
	prng            *utils.PRNGService
	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher
	presenter       Presenter
	opts            Options

	active      bool
	cards       []QuizCard
	selected    *QuizCard
	answered    bool
	closeHandle timer.Handle
	onDone      func()
}

func NewEngine(keys []string, questions defs.QuestionProvider, deck *economy.DeckPool, prng *utils.PRNGService,
	scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, opts Options) *Engine {
	if questions == nil || deck == nil || prng == nil || scheduler == nil {
		panic("progression: NewEngine requires questions, deck, prng and scheduler")
	}
	if opts.CardCount <= 0 {
		opts.CardCount = 3
	}
	return &Engine{
		friendships:     newFriendshipTable(keys),
		questions:       questions,
		deck:            deck,
		prng:            prng,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		presenter:       NopPresenter{},
		opts:            opts,
	}
}

// SetPresenter подключает слой показа. nil возвращает NopPresenter.
func (e *Engine) SetPresenter(p Presenter) {
	if p == nil {
		p = NopPresenter{}
	}
	e.presenter = p
}

// IsQuizActive сообщает, открыта ли викторина.
func (e *Engine) IsQuizActive() bool { return e.active }

// CurrentCards возвращает карты текущей викторины.
func (e *Engine) CurrentCards() []QuizCard {
	out := make([]QuizCard, len(e.cards))
	copy(out, e.cards)
	return out
}

// SelectedCard возвращает выбранную карту.
func (e *Engine) SelectedCard() (QuizCard, bool) {
	if e.selected == nil {
		return QuizCard{}, false
	}
	return *e.selected, true
}

// Friendship возвращает запись дружбы архетипа.
func (e *Engine) Friendship(key string) (FriendshipRecord, bool) {
	r, ok := e.friendships[key]
	if !ok {
		return FriendshipRecord{}, false
	}
	return *r, true
}

// BattleBonus возвращает боевой бонус архетипа (0 для неизвестного).
func (e *Engine) BattleBonus(key string) float64 {
	if r, ok := e.friendships[key]; ok {
		return r.BattleBonus
	}
	return 0
}

// AttackMultiplier возвращает множитель атаки для юнитов архетипа.
func (e *Engine) AttackMultiplier(key string) float64 {
	if r, ok := e.friendships[key]; ok {
		return r.AttackMultiplier()
	}
	return 1
}

// Friendships возвращает копии всех записей, отсортированные по ключу.
func (e *Engine) Friendships() []FriendshipRecord {
	out := make([]FriendshipRecord, 0, len(e.friendships))
	for _, k := range e.friendships.keys() {
		out = append(out, *e.friendships[k])
	}
	return out
}

// TriggerQuiz выбирает до CardCount разных архетипов и показывает карты.
// Возвращает false, если викторина уже идет или ни для одного архетипа
// нет вопросов; onDone тогда не вызывается.
func (e *Engine) TriggerQuiz(onDone func()) bool {
	if e.active {
		return false
	}

	picked := e.prng.PickDistinct(e.friendships.keys(), e.opts.CardCount)
	cards := make([]QuizCard, 0, len(picked))
	for _, key := range picked {
		level := e.friendships[key].Level
		q, ok := SelectQuestion(e.questions.Questions(key), level, e.prng)
		if !ok {
			log.Printf("ProgressionEngine: no questions for %s, skipping card", key)
			continue
		}
		cards = append(cards, QuizCard{Animal: key, Difficulty: q.Difficulty, Question: q})
	}
	if len(cards) == 0 {
		log.Println("ProgressionEngine: no cards could be built, quiz skipped")
		return false
	}

	e.active = true
	e.cards = cards
	e.selected = nil
	e.answered = false
	e.onDone = onDone
	e.dispatch(event.QuizStarted, nil)
	e.presenter.OnCardsPresented(e.CurrentCards())
	return true
}

// OnCardChosen выбирает карту и показывает ее вопрос.
func (e *Engine) OnCardChosen(index int) error {
	if !e.active {
		return ErrNoQuiz
	}
	if e.answered {
		return ErrAlreadyAnswered
	}
	if index < 0 || index >= len(e.cards) {
		return fmt.Errorf("%w: %d of %d", ErrBadCardIndex, index, len(e.cards))
	}
	card := e.cards[index]
	e.selected = &card
	e.presenter.OnQuestion(card)
	return nil
}

// OnAnswerSubmitted проверяет ответ, применяет награду или штраф и
// закрывает викторину через AnswerCloseDelay.
func (e *Engine) OnAnswerSubmitted(letter string) (bool, error) {
	if !e.active {
		return false, ErrNoQuiz
	}
	if e.selected == nil {
		return false, ErrNoCardChosen
	}
	if e.answered {
		return false, ErrAlreadyAnswered
	}
	e.answered = true

	card := *e.selected
	correct := card.Question.IsCorrect(letter)
	e.ApplyAnswerEffect(card.Animal, correct)
	e.presenter.OnAnswerResult(card, letter, correct)

	e.closeHandle = e.scheduler.Schedule(e.opts.AnswerCloseDelay, 0, e.Close)
	return correct, nil
}

// ApplyAnswerEffect: верный ответ повышает уровень и бонус и добавляет
// карту случайного архетипа; неверный снижает бонус и забирает карту
// случайного архетипа из имеющихся.
func (e *Engine) ApplyAnswerEffect(key string, correct bool) {
	r, ok := e.friendships[key]
	if !ok {
		log.Printf("ProgressionEngine: unknown archetype %q", key)
		return
	}

	if correct {
		r.Level++
		r.BattleBonus += e.opts.CorrectBonus
		reward := e.prng.Choose(e.friendships.keys())
		e.deck.Add(reward, 1)
		log.Printf("ProgressionEngine: %s friendship %d, bonus %+.2f, deck +1 %s", key, r.Level, r.BattleBonus, reward)
	} else {
		r.BattleBonus -= e.opts.WrongPenalty
		if held := e.deck.HeldKeys(); len(held) > 0 {
			lost := e.prng.Choose(held)
			e.deck.Remove(lost, 1)
			log.Printf("ProgressionEngine: %s bonus %+.2f, deck -1 %s", key, r.BattleBonus, lost)
		} else {
			log.Printf("ProgressionEngine: %s bonus %+.2f, deck empty", key, r.BattleBonus)
		}
	}

	e.dispatch(event.QuizAnswered, event.QuizEvent{Animal: key, Correct: correct, Level: r.Level, Bonus: r.BattleBonus})
}

// Close закрывает викторину и сообщает о завершении.
func (e *Engine) Close() {
	if !e.active {
		return
	}
	if e.closeHandle != 0 {
		e.scheduler.Cancel(e.closeHandle)
		e.closeHandle = 0
	}
	e.active = false
	e.cards = nil
	e.selected = nil
	e.presenter.OnQuizClosed()
	e.dispatch(event.QuizCompleted, nil)

	if done := e.onDone; done != nil {
		e.onDone = nil
		done()
	}
}

func (e *Engine) dispatch(t event.EventType, data interface{}) {
	if e.eventDispatcher != nil {
		e.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
