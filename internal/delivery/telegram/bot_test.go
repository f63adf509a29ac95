package telegram

import (
	"context"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func newTestHandler() *BotHandler {
	h := &BotHandler{
		adminAuthorized:  make(map[int64]bool),
		awaitingPassword: make(map[int64]bool),
		botStartedAt:     time.Now(),
	}
	h.workerPool = newWorkerPool(h, 1)
	return h
}

func newTestMessage(text string, at time.Time) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: 7, UserName: "salim"},
		Chat:      &tgbotapi.Chat{ID: 7},
		Date:      int(at.Unix()),
		Text:      text,
	}
}

// Bot ishga tushishidan oldingi xabarlar e'tiborsiz qoladi.
func TestHandleMessageIgnoresStaleUpdates(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	stale := newTestMessage("كم عدد الأصناف؟", h.botStartedAt.Add(-time.Hour))
	h.handleMessage(ctx, stale)
	assert.Empty(t, h.workerPool.requestQueue, "stale message must not be queued")

	fresh := newTestMessage("كم عدد الأصناف؟", h.botStartedAt.Add(2*time.Second))
	h.handleMessage(ctx, fresh)
	assert.Len(t, h.workerPool.requestQueue, 1, "fresh message should be queued")
}
