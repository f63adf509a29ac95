package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArabic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"diacritics removed", "مُنْتَجٌ", "منتج"},
		{"hamza variants folded", "أصناف إجمالي آخر", "اصناف اجمالي اخر"},
		{"waw hamza folded", "مؤشر", "موشر"},
		{"ya variants folded", "زبائن أعلى", "زباين اعلي"},
		{"ta marbuta folded", "فاتورة بضاعة", "فاتوره بضاعه"},
		{"latin lowercased", "SKU-15 Cable", "sku-15 cable"},
		{"quotes stripped", `"كابل" 'نحاس'`, "كابل نحاس"},
		{"whitespace collapsed", "كم   عدد \n الاصناف", "كم عدد الاصناف"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeArabic(tt.input))
		})
	}
}

func TestNormalizeArabicIdempotent(t *testing.T) {
	inputs := []string{
		"كم عدد الأصناف؟",
		"هل عندي أصناف ناقصة؟",
		"مُنْتَجٌ جديد بسعر 15.5",
		"ما سعر كابل 1.5مم؟",
	}
	for _, input := range inputs {
		once := NormalizeArabic(input)
		assert.Equal(t, once, NormalizeArabic(once), "normalization should be idempotent for %q", input)
	}
}
