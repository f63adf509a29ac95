package usecase

import (
	"strings"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

// Kalit so'zlar normallashtirilgan shaklda saqlanadi, chunki matching
// NormalizeArabic dan o'tgan matn ustida ishlaydi (hamza/ta-marbuta
// allaqachon buklangan bo'ladi).
var (
	productKeywords  = []string{"صنف", "منتج", "اصناف", "منتجات", "بضاعه", "سلعه"}
	lowStockKeywords = []string{"ناقص", "منخفض", "نقص", "نقصان", "نفد", "قليل"}
	invoiceKeywords  = []string{"فاتوره", "فواتير", "فاتور"}
	todayKeywords    = []string{"اليوم", "النهارده", "اليومين"}
	monthKeywords    = []string{"هذا الشهر", "الشهر", "الشهر الحالي", "الشهريه"}
	rankingKeywords  = []string{"اعلي", "اكبر", "الاكثر", "الاكثر مبيعا", "اكثر مبيعا", "الاكثر شراء"}
	customerKeywords = []string{"عميل", "عملاء", "زبون", "زباين", "مميز"}
	priceKeywords    = []string{"سعر", "ثمن", "كام سعر", "بكم", "قيمه"}
	stockKeywords    = []string{"مخزون", "كميه", "كم في", "في المخزن", "بالمخزن"}
	backupKeywords   = []string{"نسخ", "نسخه احتياطيه", "باك اب", "backup"}
	helpKeywords     = []string{"مساعده", "متي", "كيف", "ممكن", "ساعدني", "شنو"}
	totalKeywords    = []string{"اجمالي", "المجموع"}
)

// intentRule bitta (predicate, intent) juftligi. Ro'yxat tartibi
// muhim: birinchi mos kelgan qoida g'olib bo'ladi va shu tartib
// noaniq savollarni hal qiladi (masalan "كم سعر الصنف الناقص").
type intentRule struct {
	name   string
	intent entity.Intent
	match  func(text string) bool
}

var intentRules = []intentRule{
	{
		name:   "product-low-stock",
		intent: entity.IntentLowStock,
		match: func(t string) bool {
			return containsAny(t, productKeywords) && !containsAny(t, invoiceKeywords) && containsAny(t, lowStockKeywords)
		},
	},
	{
		name:   "products-count",
		intent: entity.IntentProductsCount,
		match: func(t string) bool {
			return containsAny(t, productKeywords) && !containsAny(t, invoiceKeywords)
		},
	},
	{
		name:   "invoices-today",
		intent: entity.IntentInvoicesToday,
		match: func(t string) bool {
			return containsAny(t, invoiceKeywords) && containsAny(t, todayKeywords)
		},
	},
	{
		name:   "invoices-month",
		intent: entity.IntentInvoicesMonth,
		match: func(t string) bool {
			return containsAny(t, invoiceKeywords) && containsAny(t, monthKeywords)
		},
	},
	{
		name:   "invoices-total",
		intent: entity.IntentInvoicesTotal,
		match: func(t string) bool {
			return containsAny(t, invoiceKeywords) && (containsAny(t, rankingKeywords) || containsAny(t, totalKeywords))
		},
	},
	{
		name:   "invoices-count",
		intent: entity.IntentInvoicesCount,
		match: func(t string) bool {
			return containsAny(t, invoiceKeywords)
		},
	},
	{
		name:   "top-customers",
		intent: entity.IntentTopCustomers,
		match: func(t string) bool {
			// "مميز" o'z-o'zidan top so'roviga ko'taradi.
			return containsAny(t, customerKeywords) &&
				(containsAny(t, rankingKeywords) || strings.Contains(t, "مميز"))
		},
	},
	{
		name:   "customers-count",
		intent: entity.IntentCustomersCount,
		match: func(t string) bool {
			return containsAny(t, customerKeywords)
		},
	},
	{
		name:   "product-lookup",
		intent: entity.IntentProductLookup,
		match: func(t string) bool {
			return containsAny(t, priceKeywords) || containsAny(t, stockKeywords)
		},
	},
	{
		// Yuqoridagi birinchi qoida odatda buni qamrab oladi.
		name:   "low-stock-generic",
		intent: entity.IntentLowStock,
		match: func(t string) bool {
			return containsAny(t, lowStockKeywords) && containsAny(t, productKeywords)
		},
	},
	{
		name:   "backup",
		intent: entity.IntentBackup,
		match: func(t string) bool {
			return containsAny(t, backupKeywords)
		},
	},
	{
		name:   "help",
		intent: entity.IntentHelp,
		match: func(t string) bool {
			return containsAny(t, helpKeywords)
		},
	},
}

// DetectIntent normallashtirilgan matnni yopiq intentlardan biriga
// moslashtiradi. Hech biri mos kelmasa fallback qaytadi.
func DetectIntent(normalized string) entity.Intent {
	for _, rule := range intentRules {
		if rule.match(normalized) {
			return rule.intent
		}
	}
	return entity.IntentFallback
}
