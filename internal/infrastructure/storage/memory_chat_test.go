package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

func TestMemoryChatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChatRepository(3)

	for i := 0; i < 5; i++ {
		msg := entity.ChatMessage{
			ID:        uuid.New().String(),
			UserID:    1,
			Username:  "salim",
			Text:      fmt.Sprintf("سؤال %d", i),
			Response:  fmt.Sprintf("جواب %d", i),
			Timestamp: time.Now(),
		}
		require.NoError(t, repo.SaveMessage(ctx, msg))
	}

	// maxSize=3 faqat oxirgi uchta xabarni saqlaydi
	history, err := repo.GetHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "سؤال 2", history[0].Text)
	assert.Equal(t, "سؤال 4", history[2].Text)

	limited, err := repo.GetHistory(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "سؤال 4", limited[0].Text)

	require.NoError(t, repo.ClearHistory(ctx, 1))
	history, err = repo.GetHistory(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryChatRepositoryIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryChatRepository(10)

	require.NoError(t, repo.SaveMessage(ctx, entity.ChatMessage{ID: "a", UserID: 1, Text: "من المستخدم الأول"}))
	require.NoError(t, repo.SaveMessage(ctx, entity.ChatMessage{ID: "b", UserID: 2, Text: "من المستخدم الثاني"}))

	h1, err := repo.GetHistory(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, h1, 1)
	assert.Equal(t, "من المستخدم الأول", h1[0].Text)

	require.NoError(t, repo.ClearHistory(ctx, 1))
	h2, err := repo.GetHistory(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, h2, 1)
}
