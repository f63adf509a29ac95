package repository

import (
	"context"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

// ChatRepository chat tarixini saqlash uchun interface
type ChatRepository interface {
	// SaveMessage xabarni saqlash
	SaveMessage(ctx context.Context, message entity.ChatMessage) error

	// GetHistory foydalanuvchi chat tarixini olish (oxirgi limit ta)
	GetHistory(ctx context.Context, userID int64, limit int) ([]entity.ChatMessage, error)

	// ClearHistory foydalanuvchi tarixini tozalash
	ClearHistory(ctx context.Context, userID int64) error
}
