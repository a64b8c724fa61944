package service

import (
	"fmt"
	"sync"

	"github.com/avc/orderchat/internal/domain"
	"github.com/shopspring/decimal"
)

// CartProjector хранит последний снимок корзины, присланный сервисом.
// Снимок заменяется целиком, итог всегда пересчитывается.
type CartProjector struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

// NewCartProjector создает пустую корзину
func NewCartProjector() *CartProjector {
	return &CartProjector{lines: []domain.CartLine{}}
}

// ValidateLines проверяет инварианты всех позиций снимка
func ValidateLines(lines []domain.CartLine) error {
	for i, line := range lines {
		if !line.Valid() {
			return fmt.Errorf("%w: line %d (%q, price %v, quantity %d)", domain.ErrInvalidCart, i, line.Name, line.UnitPrice, line.Quantity)
		}
	}
	return nil
}

// Replace заменяет снимок корзины целиком
func (c *CartProjector) Replace(lines []domain.CartLine) {
	snapshot := make([]domain.CartLine, len(lines))
	copy(snapshot, lines)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = snapshot
}

// Clear очищает локальный снимок
func (c *CartProjector) Clear() {
	c.Replace(nil)
}

// Lines возвращает копию текущего снимка
func (c *CartProjector) Lines() []domain.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total возвращает сумму unitPrice * quantity по текущему снимку
func (c *CartProjector) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CartTotal(c.lines)
}

// CartTotal считает итог по позициям в десятичной арифметике
func CartTotal(lines []domain.CartLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total.InexactFloat64()
}
