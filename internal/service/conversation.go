package service

import (
	"sync"

	"github.com/avc/orderchat/internal/domain"
)

// ConversationLog хранит реплики разговора в порядке добавления.
// Записи только добавляются, существующие не меняются и не удаляются.
type ConversationLog struct {
	mu    sync.RWMutex
	turns []domain.ChatTurn
}

// NewConversationLog создает пустой лог разговора
func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Append добавляет реплику в конец лога
func (l *ConversationLog) Append(turn domain.ChatTurn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = append(l.turns, turn)
}

// AppendUser добавляет реплику пользователя
func (l *ConversationLog) AppendUser(content string) domain.ChatTurn {
	turn := domain.ChatTurn{Role: domain.RoleUser, Content: content}
	l.Append(turn)
	return turn
}

// AppendBot добавляет реплику бота
func (l *ConversationLog) AppendBot(content string, isReceipt bool) domain.ChatTurn {
	turn := domain.ChatTurn{Role: domain.RoleBot, Content: content, IsReceipt: isReceipt}
	l.Append(turn)
	return turn
}

// All возвращает копию всех реплик, старые первыми
func (l *ConversationLog) All() []domain.ChatTurn {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.ChatTurn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len возвращает количество реплик
func (l *ConversationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.turns)
}

// Last возвращает последнюю реплику
func (l *ConversationLog) Last() (domain.ChatTurn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.turns) == 0 {
		return domain.ChatTurn{}, false
	}
	return l.turns[len(l.turns)-1], true
}
