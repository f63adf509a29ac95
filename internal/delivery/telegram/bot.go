package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
	"github.com/yourusername/shahrazad-assistant/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot       *tgbotapi.BotAPI
	assistant usecase.AssistantUseCase
	chatRepo  repository.ChatRepository
	store     repository.RecordStore

	adminPassword string

	adminMu          sync.RWMutex
	adminAuthorized  map[int64]bool
	awaitingPassword map[int64]bool

	workerPool   *workerPool
	botStartedAt time.Time
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	assistant usecase.AssistantUseCase,
	chatRepo repository.ChatRepository,
	store repository.RecordStore,
	adminPassword string,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := &BotHandler{
		bot:              bot,
		assistant:        assistant,
		chatRepo:         chatRepo,
		store:            store,
		adminPassword:    adminPassword,
		adminAuthorized:  make(map[int64]bool),
		awaitingPassword: make(map[int64]bool),
		botStartedAt:     time.Now(),
	}
	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.workerPool.shutdown()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	// Bot ishga tushishidan oldin navbatda qolgan eski xabarlarga
	// javob bermaymiz.
	if message.Time().Before(h.botStartedAt) {
		return
	}
	userID := message.From.ID
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	if h.isAwaitingPassword(userID) {
		h.handlePasswordInput(message)
		return
	}
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}
	if strings.TrimSpace(message.Text) == "" {
		return
	}

	// Har bir savol mustaqil pipeline: navbatga qo'yiladi, javoblar
	// kelish tartibida yuboriladi.
	h.workerPool.submit(&queryRequest{
		ctx:      ctx,
		userID:   userID,
		username: username,
		text:     message.Text,
		chatID:   message.Chat.ID,
	})
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d", chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("failed to send message chat=%d: %v", chatID, err)
	}
}

func (h *BotHandler) sendTyping(chatID int64) {
	if h.bot == nil {
		return
	}
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	_, _ = h.bot.Request(action)
}

func (h *BotHandler) isAwaitingPassword(userID int64) bool {
	h.adminMu.RLock()
	defer h.adminMu.RUnlock()
	return h.awaitingPassword[userID]
}

func (h *BotHandler) isAdmin(userID int64) bool {
	h.adminMu.RLock()
	defer h.adminMu.RUnlock()
	return h.adminAuthorized[userID]
}
