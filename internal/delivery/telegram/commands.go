package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const historyCommandLimit = 10

const (
	msgGreeting    = "مرحباً! اسألني عن المخزون أو الفواتير أو العملاء. مثلاً: \"هل عندي أصناف ناقصة؟\""
	msgCommandHelp = `يمكنك أن تسألني مثلاً:
• كم عدد الأصناف؟
• هل عندي أصناف ناقصة؟
• كم فاتورة اليوم؟
• من أفضل الزبائن؟
• سعر كابل 25؟

الأوامر:
/start — رسالة الترحيب
/help — هذه الرسالة
/clear — مسح سجل المحادثة
/history — آخر الأسئلة والأجوبة
/admin — دخول المشرف
/export — نسخة احتياطية (للمشرف)`
	msgAskPassword    = "🔐 أدخل كلمة مرور المشرف:"
	msgAdminWelcome   = "✅ تم تسجيل الدخول كمشرف. الأمر /export متاح الآن."
	msgWrongPassword  = "❌ كلمة المرور غير صحيحة."
	msgAdminOnly      = "هذا الأمر متاح للمشرف فقط. استخدم /admin أولاً."
	msgLoggedOut      = "تم تسجيل الخروج."
	msgHistoryCleared = "🗑 تم مسح سجل المحادثة."
	msgHistoryEmpty   = "لا يوجد سجل محادثة بعد."
	msgUnknownCommand = "أمر غير معروف. جرّب /help."
)

// handleCommand buyruqlarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	command := strings.TrimPrefix(strings.Fields(strings.TrimSpace(message.Text))[0], "/")
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}

	switch command {
	case "start":
		h.sendMessage(chatID, msgGreeting)
	case "help":
		h.sendMessage(chatID, msgCommandHelp)
	case "clear":
		h.handleClearCommand(ctx, userID, chatID)
	case "history":
		h.handleHistoryCommand(ctx, userID, chatID)
	case "admin":
		h.handleAdminCommand(userID, chatID)
	case "logout":
		h.handleLogoutCommand(userID, chatID)
	case "export":
		h.handleExportCommand(ctx, userID, chatID)
	default:
		h.sendMessage(chatID, msgUnknownCommand)
	}
}

func (h *BotHandler) handleClearCommand(ctx context.Context, userID, chatID int64) {
	if h.chatRepo == nil {
		h.sendMessage(chatID, msgHistoryEmpty)
		return
	}
	if err := h.chatRepo.ClearHistory(ctx, userID); err != nil {
		log.Printf("failed to clear history for user %d: %v", userID, err)
	}
	h.sendMessage(chatID, msgHistoryCleared)
}

func (h *BotHandler) handleHistoryCommand(ctx context.Context, userID, chatID int64) {
	if h.chatRepo == nil {
		h.sendMessage(chatID, msgHistoryEmpty)
		return
	}
	history, err := h.chatRepo.GetHistory(ctx, userID, historyCommandLimit)
	if err != nil {
		log.Printf("failed to load history for user %d: %v", userID, err)
		h.sendMessage(chatID, msgHistoryEmpty)
		return
	}
	if len(history) == 0 {
		h.sendMessage(chatID, msgHistoryEmpty)
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 آخر الأسئلة:\n")
	for _, m := range history {
		sb.WriteString(fmt.Sprintf("\n❓ %s\n💬 %s\n", m.Text, m.Response))
	}
	h.sendMessage(chatID, sb.String())
}

func (h *BotHandler) handleAdminCommand(userID, chatID int64) {
	if h.isAdmin(userID) {
		h.sendMessage(chatID, msgAdminWelcome)
		return
	}
	h.adminMu.Lock()
	h.awaitingPassword[userID] = true
	h.adminMu.Unlock()
	h.sendMessage(chatID, msgAskPassword)
}

func (h *BotHandler) handleLogoutCommand(userID, chatID int64) {
	h.adminMu.Lock()
	delete(h.adminAuthorized, userID)
	delete(h.awaitingPassword, userID)
	h.adminMu.Unlock()
	h.sendMessage(chatID, msgLoggedOut)
}

// handlePasswordInput parol kiritishni tekshirish
func (h *BotHandler) handlePasswordInput(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	h.adminMu.Lock()
	delete(h.awaitingPassword, userID)
	ok := h.adminPassword != "" && message.Text == h.adminPassword
	if ok {
		h.adminAuthorized[userID] = true
	}
	h.adminMu.Unlock()

	if ok {
		log.Printf("Admin login for user %d", userID)
		h.sendMessage(chatID, msgAdminWelcome)
	} else {
		h.sendMessage(chatID, msgWrongPassword)
	}
}
