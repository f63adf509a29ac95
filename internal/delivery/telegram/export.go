package telegram

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

const (
	msgExportPreparing = "⏳ يتم تجهيز النسخة الاحتياطية..."
	msgExportFailed    = "عذراً، تعذر إنشاء النسخة الاحتياطية."
	msgExportCaption   = "📁 نسخة احتياطية من البيانات"
)

// handleExportCommand barcha kolleksiyalarni Excel faylga chiqarish
func (h *BotHandler) handleExportCommand(ctx context.Context, userID, chatID int64) {
	if !h.isAdmin(userID) {
		h.sendMessage(chatID, msgAdminOnly)
		return
	}
	if h.store == nil {
		h.sendMessage(chatID, msgExportFailed)
		return
	}

	h.sendMessage(chatID, msgExportPreparing)

	file, err := h.buildBackupXLSX(ctx)
	if err != nil {
		log.Printf("failed to build backup for user %d: %v", userID, err)
		h.sendMessage(chatID, msgExportFailed)
		return
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		log.Printf("failed to serialize backup: %v", err)
		h.sendMessage(chatID, msgExportFailed)
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("backup_%s.xlsx", time.Now().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = msgExportCaption
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("failed to send backup document: %v", err)
		h.sendMessage(chatID, msgExportFailed)
	}
}

// buildBackupXLSX har bir kolleksiya uchun alohida sheet yaratadi
func (h *BotHandler) buildBackupXLSX(ctx context.Context) (*excelize.File, error) {
	file := excelize.NewFile()

	collections := []string{
		constants.CollectionProducts,
		constants.CollectionInvoices,
		constants.CollectionCustomers,
	}

	for i, collection := range collections {
		records, err := h.store.GetAllRecords(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", collection, err)
		}

		sheet := collection
		if i == 0 {
			if err := file.SetSheetName(file.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return nil, err
			}
		}

		if err := writeRecordsSheet(file, sheet, records); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// writeRecordsSheet yozuvlarni jadval ko'rinishida yozish. Ustunlar
// barcha yozuvlardagi maydon nomlarining birlashmasi.
func writeRecordsSheet(file *excelize.File, sheet string, records []entity.Record) error {
	columns := collectColumns(records)
	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, name); err != nil {
			return err
		}
	}

	for row, record := range records {
		for col, name := range columns {
			value, ok := record[name]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, fmt.Sprintf("%v", value)); err != nil {
				return err
			}
		}
	}

	return nil
}

func collectColumns(records []entity.Record) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, record := range records {
		for key := range record {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
