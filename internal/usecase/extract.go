package usecase

import (
	"regexp"
	"strconv"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

var (
	reDecimalNumber = regexp.MustCompile(`\d+(\.\d+)?`)
	reDigitRun      = regexp.MustCompile(`\d+`)

	// SKU/kod ko'rinishlari: "sku 123", "#123", "كود 123", "رمز 123".
	reProductCode = regexp.MustCompile(`(?i)(sku[:#\s-]*\d+|#\d+|كود\s*\d+|رمز\s*\d+)`)
)

// ExtractEntities xom matndan sonli qiymatni ajratadi. Faqat low-stock
// chegarasini qayta belgilash uchun ishlatiladi.
func ExtractEntities(rawText string) entity.Entities {
	n, ok := extractNumber(rawText)
	return entity.Entities{Number: n, HasNumber: ok}
}

// extractNumber returns the first decimal literal in the raw text.
func extractNumber(rawText string) (float64, bool) {
	match := reDecimalNumber.FindString(rawText)
	if match == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractCodeDigits kod/SKU belgisidan keyingi raqamlarni qaytaradi,
// topilmasa bo'sh satr.
func extractCodeDigits(rawText string) string {
	match := reProductCode.FindString(rawText)
	if match == "" {
		return ""
	}
	return reDigitRun.FindString(match)
}
