package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNum   float64
		wantFound bool
	}{
		{"no number", "هل عندي أصناف ناقصة؟", 0, false},
		{"integer", "الأصناف الناقصة عن 5", 5, true},
		{"decimal", "سعر كابل 1.5مم", 1.5, true},
		{"first of several", "من 3 إلى 10", 3, true},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(tt.input)
			assert.Equal(t, tt.wantFound, got.HasNumber)
			if tt.wantFound {
				assert.Equal(t, tt.wantNum, got.Number)
			}
		})
	}
}

func TestExtractCodeDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hash code", "سعر #1234", "1234"},
		{"sku with dash", "SKU-77 price?", "77"},
		{"sku with colon", "sku: 812", "812"},
		{"arabic code word", "كود 55", "55"},
		{"arabic symbol word", "رمز 901", "901"},
		{"bare number is not a code", "سعر كابل 25", ""},
		{"no digits", "كم عدد الأصناف", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractCodeDigits(tt.input))
		})
	}
}
