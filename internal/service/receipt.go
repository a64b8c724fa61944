package service

import (
	"strings"
	"sync"

	"github.com/avc/orderchat/internal/domain"
)

// Маркеры текстового чека
const (
	ReceiptHeaderMarker    = "----- Receipt -----"
	ReceiptSeparatorMarker = "---------------------"
	receiptTitle           = "Your Receipt"
)

// ReceiptLifecycle хранит признак показанного чека.
// Сам текст чека живет в реплике бота.
type ReceiptLifecycle struct {
	mu         sync.RWMutex
	hasReceipt bool
}

// NewReceiptLifecycle создает новый ReceiptLifecycle
func NewReceiptLifecycle() *ReceiptLifecycle {
	return &ReceiptLifecycle{}
}

// Observe фиксирует признак чека из последнего ответа сервиса
func (r *ReceiptLifecycle) Observe(hasReceipt bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hasReceipt = hasReceipt
}

// Reset сбрасывает признак чека при начале нового заказа
func (r *ReceiptLifecycle) Reset() {
	r.Observe(false)
}

// Active сообщает, показан ли чек
func (r *ReceiptLifecycle) Active() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.hasReceipt
}

// IsReceiptPayload проверяет наличие маркера чека в тексте.
// Решение влияет только на отображение, состояние сессии определяется has_receipt.
func IsReceiptPayload(text string) bool {
	return strings.Contains(text, ReceiptHeaderMarker)
}

// RenderTurn готовит реплику к отображению: текст с маркером чека
// превращается в структурированный чек, остальное остается текстом
func RenderTurn(turn domain.ChatTurn) domain.RenderedTurn {
	rendered := domain.RenderedTurn{ChatTurn: turn}
	if !IsReceiptPayload(turn.Content) {
		return rendered
	}

	view := &domain.ReceiptView{Title: receiptTitle, Lines: []domain.ReceiptLine{}}
	for _, line := range strings.Split(turn.Content, "\n") {
		if strings.Contains(line, ReceiptHeaderMarker) || strings.Contains(line, ReceiptSeparatorMarker) {
			continue
		}
		view.Lines = append(view.Lines, domain.ReceiptLine{
			Text:     line,
			Emphasis: strings.Contains(line, "Order ID:") || strings.Contains(line, "Total:"),
		})
	}
	rendered.Receipt = view

	return rendered
}

// RenderTurns готовит к отображению весь лог
func RenderTurns(turns []domain.ChatTurn) []domain.RenderedTurn {
	out := make([]domain.RenderedTurn, len(turns))
	for i, turn := range turns {
		out[i] = RenderTurn(turn)
	}
	return out
}
