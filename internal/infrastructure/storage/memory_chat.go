package storage

import (
	"context"
	"sync"
	"time"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	messages map[int64][]entity.ChatMessage
	maxSize  int
}

// NewMemoryChatRepository in-memory chat repository yaratish
func NewMemoryChatRepository(maxSize int) repository.ChatRepository {
	return &memoryChatRepository{
		messages: make(map[int64][]entity.ChatMessage),
		maxSize:  maxSize,
	}
}

// SaveMessage xabarni saqlash
func (m *memoryChatRepository) SaveMessage(ctx context.Context, message entity.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	history := append(m.messages[message.UserID], message)

	// Maksimal hajmni nazorat qilish
	if m.maxSize > 0 && len(history) > m.maxSize {
		history = history[len(history)-m.maxSize:]
	}
	m.messages[message.UserID] = history
	return nil
}

// GetHistory foydalanuvchi chat tarixini olish
func (m *memoryChatRepository) GetHistory(ctx context.Context, userID int64, limit int) ([]entity.ChatMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.messages[userID]
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	// Return a defensive copy so callers can safely iterate without holding the lock.
	out := make([]entity.ChatMessage, len(history))
	copy(out, history)
	return out, nil
}

// ClearHistory foydalanuvchi tarixini tozalash
func (m *memoryChatRepository) ClearHistory(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.messages, userID)
	return nil
}
