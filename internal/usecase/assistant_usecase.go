package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
)

// AssistantUseCase savol-javob pipeline: normalize → intent →
// dispatch → formatlangan javob. Har bir chaqiriq mustaqil, holat
// saqlanmaydi.
type AssistantUseCase interface {
	// ProcessQuery always returns a user-facing string; store
	// failures are logged and turned into a generic failure message.
	ProcessQuery(ctx context.Context, rawText string) string
}

type assistantUseCase struct {
	store            repository.RecordStore
	defaultThreshold float64
	now              func() time.Time
}

// NewAssistantUseCase yangi AssistantUseCase yaratish
func NewAssistantUseCase(store repository.RecordStore, defaultThreshold float64) AssistantUseCase {
	if defaultThreshold <= 0 {
		defaultThreshold = constants.DefaultLowStockThreshold
	}
	return &assistantUseCase{
		store:            store,
		defaultThreshold: defaultThreshold,
		now:              time.Now,
	}
}

func (u *assistantUseCase) ProcessQuery(ctx context.Context, rawText string) string {
	normalized := NormalizeArabic(rawText)
	if normalized == "" {
		return msgAskQuestion
	}

	intent := DetectIntent(normalized)
	entities := ExtractEntities(rawText)

	response, err := u.dispatch(ctx, intent, entities, normalized, rawText)
	if err != nil {
		log.Printf("assistant: %s query failed: %v", intent, err)
		return msgInternalError
	}
	return response
}

func (u *assistantUseCase) dispatch(ctx context.Context, intent entity.Intent, entities entity.Entities, normalized, rawText string) (string, error) {
	switch intent {
	case entity.IntentProductsCount:
		return u.handleProductsCount(ctx)

	case entity.IntentLowStock:
		if entities.HasNumber {
			return u.handleLowStockWithThreshold(ctx, entities.Number)
		}
		return u.handleLowStock(ctx)

	case entity.IntentInvoicesToday:
		return u.handleInvoicesCount(ctx, "today")

	case entity.IntentInvoicesMonth:
		return u.handleInvoicesCount(ctx, "month")

	case entity.IntentInvoicesTotal:
		return u.handleInvoicesTotalToday(ctx)

	case entity.IntentInvoicesCount:
		return u.handleInvoicesCount(ctx, "all")

	case entity.IntentTopCustomers:
		return u.handleTopCustomers(ctx)

	case entity.IntentCustomersCount:
		return u.handleCustomersCount(ctx)

	case entity.IntentProductLookup:
		return u.handleProductLookup(ctx, normalized, rawText)

	case entity.IntentBackup:
		return msgBackupInfo, nil

	case entity.IntentHelp:
		return msgHelp, nil

	default:
		// Oxirgi urinish: savolda narx/miqdor ishoralari bo'lsa,
		// mahsulot qidiruviga yo'naltiramiz.
		if containsAnyFallbackHint(normalized) {
			return u.handleProductLookup(ctx, normalized, rawText)
		}
		return msgFallback, nil
	}
}

var fallbackHints = []string{"سعر", "كم", "كميه", "مخزون", "بكم"}

func containsAnyFallbackHint(normalized string) bool {
	return containsAny(normalized, fallbackHints)
}

func (u *assistantUseCase) handleProductsCount(ctx context.Context) (string, error) {
	products, err := u.store.GetAllRecords(ctx, constants.CollectionProducts)
	if err != nil {
		return "", fmt.Errorf("get products: %w", err)
	}
	return fmt.Sprintf("📦 إجمالي الأصناف المسجلة حالياً: %d صنف.", len(products)), nil
}

func (u *assistantUseCase) handleLowStock(ctx context.Context) (string, error) {
	low, err := u.store.GetLowStockProducts(ctx, u.defaultThreshold)
	if err != nil {
		return "", fmt.Errorf("get low-stock products: %w", err)
	}
	if len(low) == 0 {
		return msgNoLowStock, nil
	}

	examples := make([]string, 0, constants.LowStockExampleLimit)
	for _, p := range low {
		if len(examples) == constants.LowStockExampleLimit {
			break
		}
		examples = append(examples, fmt.Sprintf("%s (الكمية: %s)", p.FirstString("name"), formatStock(p)))
	}
	suffix := ""
	if len(low) > constants.LowStockExampleLimit {
		suffix = "، ... والمزيد"
	}
	return fmt.Sprintf("⚠️ توجد %d أصناف منخفضة المخزون. أمثلة: %s%s",
		len(low), strings.Join(examples, "، "), suffix), nil
}

func (u *assistantUseCase) handleLowStockWithThreshold(ctx context.Context, threshold float64) (string, error) {
	low, err := u.store.GetLowStockProducts(ctx, threshold)
	if err != nil {
		return "", fmt.Errorf("get low-stock products: %w", err)
	}
	limit := formatThreshold(threshold)
	if len(low) == 0 {
		return fmt.Sprintf("✅ لا توجد أصناف بكمية ≤ %s.", limit), nil
	}

	examples := make([]string, 0, constants.LowStockExampleLimit)
	for _, p := range low {
		if len(examples) == constants.LowStockExampleLimit {
			break
		}
		examples = append(examples, fmt.Sprintf("%s (%s)", p.FirstString("name"), formatStock(p)))
	}
	return fmt.Sprintf("⚠️ توجد %d أصناف منخفضة (حد %s): %s",
		len(low), limit, strings.Join(examples, "، ")), nil
}

func (u *assistantUseCase) handleInvoicesCount(ctx context.Context, period string) (string, error) {
	invoices, err := u.store.GetAllRecords(ctx, constants.CollectionInvoices)
	if err != nil {
		return "", fmt.Errorf("get invoices: %w", err)
	}

	switch period {
	case "today":
		count := countByDatePrefix(invoices, u.now().Format("2006-01-02"))
		return fmt.Sprintf("🧾 عدد الفواتير اليوم: %d فاتورة.", count), nil
	case "month":
		count := countByDatePrefix(invoices, u.now().Format("2006-01"))
		return fmt.Sprintf("🧾 عدد الفواتير في هذا الشهر: %d فاتورة.", count), nil
	default:
		return fmt.Sprintf("🧾 إجمالي عدد الفواتير: %d فاتورة.", len(invoices)), nil
	}
}

func (u *assistantUseCase) handleInvoicesTotalToday(ctx context.Context) (string, error) {
	invoices, err := u.store.GetAllRecords(ctx, constants.CollectionInvoices)
	if err != nil {
		return "", fmt.Errorf("get invoices: %w", err)
	}

	prefix := u.now().Format("2006-01-02")
	total := 0.0
	count := 0
	for _, inv := range invoices {
		if !strings.HasPrefix(invoiceDate(inv), prefix) {
			continue
		}
		count++
		if n, ok := inv.FirstNumber("total", "amount"); ok {
			total += n
		}
	}
	return fmt.Sprintf("💰 إجمالي مبيعات اليوم: %.2f ر.ق (من %d فاتورة).", total, count), nil
}

func (u *assistantUseCase) handleTopCustomers(ctx context.Context) (string, error) {
	customers, err := u.store.GetAllRecords(ctx, constants.CollectionCustomers)
	if err != nil {
		return "", fmt.Errorf("get customers: %w", err)
	}
	if len(customers) == 0 {
		return msgNoCustomers, nil
	}

	sorted := make([]entity.Record, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return customerSpend(sorted[i]) > customerSpend(sorted[j])
	})
	if len(sorted) > constants.TopCustomersLimit {
		sorted = sorted[:constants.TopCustomersLimit]
	}

	entries := make([]string, 0, len(sorted))
	for _, c := range sorted {
		name := c.FirstString("name", "phone", "id")
		entries = append(entries, fmt.Sprintf("%s (%.2f)", name, customerSpend(c)))
	}
	return "👑 أفضل العملاء: " + strings.Join(entries, "، "), nil
}

func (u *assistantUseCase) handleCustomersCount(ctx context.Context) (string, error) {
	customers, err := u.store.GetAllRecords(ctx, constants.CollectionCustomers)
	if err != nil {
		return "", fmt.Errorf("get customers: %w", err)
	}
	return fmt.Sprintf("👥 إجمالي العملاء المسجلين: %d عميل.", len(customers)), nil
}

func (u *assistantUseCase) handleProductLookup(ctx context.Context, normalized, rawText string) (string, error) {
	products, err := u.store.GetAllRecords(ctx, constants.CollectionProducts)
	if err != nil {
		return "", fmt.Errorf("get products: %w", err)
	}
	return resolveProduct(products, normalized, rawText), nil
}

func countByDatePrefix(invoices []entity.Record, prefix string) int {
	count := 0
	for _, inv := range invoices {
		if strings.HasPrefix(invoiceDate(inv), prefix) {
			count++
		}
	}
	return count
}

func invoiceDate(inv entity.Record) string {
	return inv.FirstString("date", "createdAt")
}

func customerSpend(c entity.Record) float64 {
	n, _ := c.FirstNumber("totalSpent", "totalPurchases")
	return n
}

func formatThreshold(threshold float64) string {
	return strconv.FormatFloat(threshold, 'f', -1, 64)
}
