package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

// matchScoreCutoff token-overlap uchun minimal ball. Butun sonli ball
// uchun bu "kamida bitta token mos kelsin" degani.
const matchScoreCutoff = 0.5

const msgProductNotFound = `لم أتمكن من تحديد الصنف المطلوب من سؤالك. جرّب: "كم سعر [اسم الصنف]" أو اذكر رمز/كود الصنف.`

// resolveProduct mahsulotni uch bosqichda qidiradi: kod/SKU, token
// mosligi, substring fallback. Hech biri topmasa yo'naltiruvchi matn.
func resolveProduct(products []entity.Record, normalizedQuery, rawQuery string) string {
	if digits := extractCodeDigits(rawQuery); digits != "" {
		if found, ok := findByCodeDigits(products, digits); ok {
			return formatProductInfo(found)
		}
	}

	if found, ok := findByTokenOverlap(products, normalizedQuery); ok {
		return formatProductInfo(found)
	}

	if found, ok := findBySubstring(products, normalizedQuery); ok {
		return formatProductInfo(found)
	}

	return msgProductNotFound
}

// findByCodeDigits: kod/sku yoki id maydonida raqamlar qatnashgan
// mahsulotni topadi. Normallashtirishga bog'liq emas.
func findByCodeDigits(products []entity.Record, digits string) (entity.Record, bool) {
	for _, p := range products {
		code := p.FirstString("code", "sku")
		if code != "" && strings.Contains(code, digits) {
			return p, true
		}
		if id := p.FirstString("id"); id != "" && strings.Contains(id, digits) {
			return p, true
		}
	}
	return nil, false
}

// findByTokenOverlap har bir mahsulotni so'rov tokenlari qanchasini o'z
// nomi/kodida saqlashiga qarab ballaydi. Teng ball bo'lsa birinchi
// uchragani qoladi.
func findByTokenOverlap(products []entity.Record, normalizedQuery string) (entity.Record, bool) {
	tokens := splitTokens(normalizedQuery)
	if len(tokens) == 0 {
		return nil, false
	}

	var best entity.Record
	bestScore := 0
	for _, p := range products {
		norm := normalizedProductText(p)
		score := 0
		for _, tok := range tokens {
			if strings.Contains(norm, tok) {
				score++
			}
		}
		if score > 0 && (best == nil || score > bestScore) {
			best = p
			bestScore = score
		}
	}

	if best != nil && float64(bestScore) > matchScoreCutoff {
		return best, true
	}
	return nil, false
}

// findBySubstring: uzunligi 2 dan ortiq biror token mahsulot matnida
// uchrasa, birinchi mos kelganini qaytaradi.
func findBySubstring(products []entity.Record, normalizedQuery string) (entity.Record, bool) {
	tokens := splitTokens(normalizedQuery)
	for _, p := range products {
		norm := normalizedProductText(p)
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) > 2 && strings.Contains(norm, tok) {
				return p, true
			}
		}
	}
	return nil, false
}

func normalizedProductText(p entity.Record) string {
	return NormalizeArabic(p.FirstString("name") + " " + p.FirstString("code", "sku"))
}

func splitTokens(text string) []string {
	fields := strings.Fields(text)
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func formatProductInfo(p entity.Record) string {
	return fmt.Sprintf("🔎 %s — السعر: %s — المخزون: %s",
		p.FirstString("name"), formatPrice(p), formatStock(p))
}

func formatPrice(p entity.Record) string {
	if n, ok := p.FirstNumber("price", "salePrice"); ok {
		return fmt.Sprintf("%.2f", n)
	}
	// Raqam bo'lmagan narx (masalan "حسب الطلب") o'z holicha chiqadi.
	if s := p.FirstString("price", "salePrice"); s != "" {
		return s
	}
	return "0.00"
}

func formatStock(p entity.Record) string {
	if s := p.FirstString("stock", "quantity"); s != "" {
		return s
	}
	return "N/A"
}
