// internal/economy/wallet.go
package economy

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientGold: не хватает золота.
	ErrInsufficientGold = errors.New("insufficient gold")
	// ErrNoCard: в колоде нет такой карты.
	ErrNoCard = errors.New("no such card in deck")
)

// Wallet хранит золото и жизни игрока. Оба значения не бывают отрицательными.
type Wallet struct {
	gold  int
	lives int
}

func NewWallet(gold, lives int) *Wallet {
	if gold < 0 {
		gold = 0
	}
	if lives < 0 {
		lives = 0
	}
	return &Wallet{gold: gold, lives: lives}
}

func (w *Wallet) Gold() int  { return w.gold }
func (w *Wallet) Lives() int { return w.lives }

// CanAfford сообщает, хватает ли золота.
func (w *Wallet) CanAfford(amount int) bool {
	return amount <= w.gold
}

// AddGold начисляет золото. Неположительные суммы игнорируются.
func (w *Wallet) AddGold(amount int) {
	if amount > 0 {
		w.gold += amount
	}
}

// SpendGold списывает золото или возвращает ErrInsufficientGold.
func (w *Wallet) SpendGold(amount int) error {
	if amount < 0 {
		return fmt.Errorf("negative spend %d", amount)
	}
	if amount > w.gold {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, amount, w.gold)
	}
	w.gold -= amount
	return nil
}

// LoseLife снимает одну жизнь и возвращает остаток.
func (w *Wallet) LoseLife() int {
	if w.lives > 0 {
		w.lives--
	}
	return w.lives
}
