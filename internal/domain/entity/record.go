package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record do'kon yozuvi: mahsulot, faktura yoki mijoz.
// Maydon nomlari manbaga qarab farq qiladi (masalan price/salePrice,
// stock/quantity), shuning uchun qiymatlar fallback tartibida o'qiladi.
type Record map[string]any

// FirstPresent returns the value of the first key that exists and is
// non-nil, in the given order.
func (r Record) FirstPresent(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// FirstString returns the first non-empty string value among keys.
// Non-string scalars are rendered with strconv rules.
func (r Record) FirstString(keys ...string) string {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		s := stringifyValue(v)
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// FirstNumber returns the first value among keys that parses as a
// number. JSON dan kelgan sonlar float64 bo'ladi, lekin int va string
// ko'rinishlari ham qabul qilinadi.
func (r Record) FirstNumber(keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		if n, ok := numberValue(v); ok {
			return n, true
		}
	}
	return 0, false
}

func stringifyValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		n, err := t.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return n, err == nil
	default:
		return 0, false
	}
}
