package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.Intent
	}{
		{"products count", "كم عدد الأصناف؟", entity.IntentProductsCount},
		{"products count via goods word", "كم بضاعة عندي", entity.IntentProductsCount},
		{"low stock", "هل عندي أصناف ناقصة؟", entity.IntentLowStock},
		{"low stock with threshold wording", "المنتجات المنخفضة عن 5", entity.IntentLowStock},
		{"invoices today", "كم فاتورة اليوم؟", entity.IntentInvoicesToday},
		{"invoices month", "كم عدد الفواتير هذا الشهر؟", entity.IntentInvoicesMonth},
		{"invoices total", "إجمالي الفواتير", entity.IntentInvoicesTotal},
		{"invoices count", "كم عدد الفواتير؟", entity.IntentInvoicesCount},
		{"top customers", "من الزبائن الأكثر شراء؟", entity.IntentTopCustomers},
		{"top customers via distinguished word", "من هو العميل المميز؟", entity.IntentTopCustomers},
		{"customers count", "كم عدد العملاء؟", entity.IntentCustomersCount},
		{"customers without ranking word", "من أفضل الزبائن", entity.IntentCustomersCount},
		{"product lookup by price", "ما سعر كابل 1.5مم؟", entity.IntentProductLookup},
		{"product lookup by stock", "كم في المخزون من مفاتيح", entity.IntentProductLookup},
		{"backup", "كيف أعمل باك اب", entity.IntentBackup},
		{"help", "ساعدني", entity.IntentHelp},
		{"fallback", "الطقس جميل", entity.IntentFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectIntent(NormalizeArabic(tt.query)))
		})
	}
}

// Savolda mahsulot va faktura so'zlari birga kelsa faktura qoidalari
// ustunlik qilmasligi kerak: mahsulot qoidasi ro'yxatda oldinroq.
func TestDetectIntentPrecedence(t *testing.T) {
	assert.Equal(t, entity.IntentLowStock,
		DetectIntent(NormalizeArabic("الأصناف الناقصة")),
		"product + low-stock wins over generic product count")

	assert.Equal(t, entity.IntentProductsCount,
		DetectIntent(NormalizeArabic("كم صنف عندي")),
		"product without low-stock keyword falls to products count")

	assert.Equal(t, entity.IntentInvoicesToday,
		DetectIntent(NormalizeArabic("فواتير اليوم اجمالي")),
		"today qualifier beats the total rule")
}

// Faktura va mahsulot so'zlari bir savolda kelsa javob doim faktura
// oilasidan bo'ladi, hech qachon products_count emas.
func TestDetectIntentInvoiceBeatsProduct(t *testing.T) {
	invoiceFamily := []entity.Intent{
		entity.IntentInvoicesCount,
		entity.IntentInvoicesToday,
		entity.IntentInvoicesMonth,
		entity.IntentInvoicesTotal,
	}

	queries := []string{
		"كم فاتورة للأصناف؟",
		"فواتير البضاعة اليوم",
		"اجمالي فواتير المنتجات هذا الشهر",
	}
	for _, q := range queries {
		got := DetectIntent(NormalizeArabic(q))
		assert.Contains(t, invoiceFamily, got, "query %q", q)
		assert.NotEqual(t, entity.IntentProductsCount, got, "query %q", q)
	}
}
