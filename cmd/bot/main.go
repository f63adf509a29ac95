package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/shahrazad-assistant/config"
	"github.com/yourusername/shahrazad-assistant/internal/delivery/telegram"
	"github.com/yourusername/shahrazad-assistant/internal/infrastructure/storage"
	"github.com/yourusername/shahrazad-assistant/internal/usecase"
	"github.com/yourusername/shahrazad-assistant/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets {
		if strings.TrimSpace(cfg.AdminPassword) == "" {
			cfg.AdminPassword = generateTempSecret(16)
			logger.InfoLogger.Printf("ADMIN_PASSWORD bo'sh. Vaqtinchalik parol: %s", cfg.AdminPassword)
		}

		if isEmptyOrDisabled(cfg.TelegramToken) {
			logger.InfoLogger.Println("TELEGRAM_BOT_TOKEN yo'q. Bot vaqtincha ishga tushmaydi.")
			<-sigChan
			return
		}
	}

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Record store (Postgres yoki in-memory fallback)
	recordStore, recordWriter := storage.NewRecordStoreFromEnv(cfg.PostgresDSN)
	logger.InfoLogger.Println("✅ Record store tayyor")

	// 2. Seed ma'lumotlarini yuklash (mavjud bo'lsa)
	if cfg.SeedFile != "" {
		if err := storage.LoadSeedFile(context.Background(), recordWriter, cfg.SeedFile); err != nil {
			log.Fatalf("❌ Seed fayl yuklanmadi (%s): %v", cfg.SeedFile, err)
		}
		logger.InfoLogger.Printf("✅ Seed fayl yuklandi: %s", cfg.SeedFile)
	}

	// 3. Chat log repository
	chatRepo := storage.NewChatRepositoryFromEnv(cfg.PostgresDSN)
	logger.InfoLogger.Println("✅ Chat repository tayyor")

	// 4. Use case
	assistant := usecase.NewAssistantUseCase(recordStore, cfg.LowStockThreshold)
	logger.InfoLogger.Println("✅ Assistant use case tayyor")

	// 5. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		assistant,
		chatRepo,
		recordStore,
		cfg.AdminPassword,
	)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	// Context yaratish
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

func initDefaultTimezone() {
	const tzName = "Asia/Qatar"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 3*60*60)
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}

func generateTempSecret(byteLen int) string {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "change-me"
	}
	return hex.EncodeToString(buf)
}
