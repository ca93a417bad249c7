// internal/economy/shop.go
package economy

import (
	"errors"
	"fmt"
	"log"

	"go-wild-friends/internal/defs"
	"go-wild-friends/internal/event"
	"go-wild-friends/internal/utils"
)

var (
	// ErrEmptySlot: в слоте магазина ничего нет.
	ErrEmptySlot = errors.New("shop slot is empty")
	// ErrBenchFull: в колоде уже столько карт, сколько вмещает скамейка.
	ErrBenchFull = errors.New("bench is full")
)

// Shop предлагает карты за золото. Предложения выбираются взвешенно
// из играбельных архетипов.
type Shop struct {
	units       defs.UnitLibrary
	wallet      *Wallet
	deck        *DeckPool
	prng        *utils.PRNGService
	slots       []string // "" значит пустой слот
	refreshCost int

	benchCapacity   int // 0: без ограничения
	gate            func() error
	eventDispatcher *event.Dispatcher
}

func NewShop(units defs.UnitLibrary, wallet *Wallet, deck *DeckPool, prng *utils.PRNGService, slotCount, refreshCost int) *Shop {
	return &Shop{
		units:       units,
		wallet:      wallet,
		deck:        deck,
		prng:        prng,
		slots:       make([]string, slotCount),
		refreshCost: refreshCost,
	}
}

// SetBenchCapacity ограничивает число карт в колоде. 0 снимает ограничение.
func (s *Shop) SetBenchCapacity(n int) {
	s.benchCapacity = n
}

// SetGate задает проверку, которую проходят покупка, продажа и платное
// обновление. Ошибка gate возвращается вызывающему как есть.
func (s *Shop) SetGate(gate func() error) {
	s.gate = gate
}

// SetEventDispatcher включает рассылку GoldChanged после операций магазина.
func (s *Shop) SetEventDispatcher(d *event.Dispatcher) {
	s.eventDispatcher = d
}

func (s *Shop) checkGate() error {
	if s.gate == nil {
		return nil
	}
	return s.gate()
}

func (s *Shop) goldChanged() {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: s.wallet.Gold()})
	}
}

// Offers возвращает копию текущих предложений.
func (s *Shop) Offers() []string {
	out := make([]string, len(s.slots))
	copy(out, s.slots)
	return out
}

// Refresh заполняет все слоты заново. Если charge, списывается цена обновления
// и действует gate; бесплатное обновление делает сама игра.
func (s *Shop) Refresh(charge bool) error {
	if charge {
		if err := s.checkGate(); err != nil {
			return fmt.Errorf("refresh shop: %w", err)
		}
		if err := s.wallet.SpendGold(s.refreshCost); err != nil {
			return fmt.Errorf("refresh shop: %w", err)
		}
		defer s.goldChanged()
	}
	entries := s.units.ShopEntries()
	for i := range s.slots {
		s.slots[i] = s.prng.ChooseWeighted(entries)
	}
	return nil
}

// Buy покупает карту из слота и добавляет ее в колоду.
func (s *Shop) Buy(slot int) (string, error) {
	if err := s.checkGate(); err != nil {
		return "", fmt.Errorf("buy: %w", err)
	}
	if slot < 0 || slot >= len(s.slots) {
		return "", fmt.Errorf("shop slot %d out of range", slot)
	}
	key := s.slots[slot]
	if key == "" {
		return "", ErrEmptySlot
	}
	def, ok := s.units.Get(key)
	if !ok {
		return "", fmt.Errorf("shop offer %q has no definition", key)
	}
	if s.benchCapacity > 0 && s.deck.Total() >= s.benchCapacity {
		return "", fmt.Errorf("buy %s: %w (%d cards)", key, ErrBenchFull, s.benchCapacity)
	}
	if err := s.wallet.SpendGold(def.Cost); err != nil {
		return "", fmt.Errorf("buy %s: %w", key, err)
	}
	s.deck.Add(key, 1)
	s.slots[slot] = ""
	log.Printf("Shop: bought %s for %d gold", key, def.Cost)
	s.goldChanged()
	return key, nil
}

// Sell продает одну карту за ее цену.
func (s *Shop) Sell(key string) (int, error) {
	if err := s.checkGate(); err != nil {
		return 0, fmt.Errorf("sell: %w", err)
	}
	def, ok := s.units.Get(key)
	if !ok {
		return 0, fmt.Errorf("sell %q: unknown archetype", key)
	}
	if err := s.deck.Take(key); err != nil {
		return 0, fmt.Errorf("sell: %w", err)
	}
	s.wallet.AddGold(def.Cost)
	s.goldChanged()
	return def.Cost, nil
}
