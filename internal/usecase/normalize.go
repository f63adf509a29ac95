package usecase

import (
	"regexp"
	"strings"
)

var (
	// General punctuation blocks plus quotes/backslash. Arab tinish
	// belgilari (؟ kabi) bu diapazonga kirmaydi va saqlanib qoladi.
	rePunctuation = regexp.MustCompile(`[\x{2000}-\x{206F}\x{2E00}-\x{2E7F}\\'"]`)
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// NormalizeArabic matnni kanonik shaklga keltiradi: tashkeel olib
// tashlanadi, harf variantlari birlashtiriladi, bo'shliqlar bitta
// bo'ladi. Idempotent: ikki marta chaqirish natijani o'zgartirmaydi.
func NormalizeArabic(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 0x064B && r <= 0x065F { // tashkeel (diacritics)
			continue
		}
		b.WriteRune(foldArabicRune(r))
	}
	t := rePunctuation.ReplaceAllString(b.String(), " ")
	t = reWhitespace.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

func foldArabicRune(r rune) rune {
	switch r {
	case 'إ', 'أ', 'آ':
		return 'ا'
	case 'ؤ':
		return 'و'
	case 'ئ', 'ى':
		return 'ي'
	case 'ة':
		return 'ه'
	case 'گ':
		return 'ك'
	default:
		return r
	}
}

func containsAny(text string, keywords []string) bool {
	for _, w := range keywords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
