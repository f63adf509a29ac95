package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

var resolverProducts = []entity.Record{
	{"id": "p-1001", "name": "كابل نحاس 1.5مم", "code": "SKU-1001", "price": 12.5, "stock": 40.0},
	{"id": "p-1002", "name": "مفتاح إنارة مزدوج", "code": "SKU-1002", "salePrice": "7.75", "quantity": 3.0},
	{"id": "p-1003", "name": "لمبة LED", "sku": "LED-55", "price": "حسب الطلب"},
}

func resolve(t *testing.T, query string) string {
	t.Helper()
	return resolveProduct(resolverProducts, NormalizeArabic(query), query)
}

func TestResolveProductByCode(t *testing.T) {
	assert.Contains(t, resolve(t, "سعر #1002"), "مفتاح إنارة مزدوج")
	assert.Contains(t, resolve(t, "سعر كود 55"), "لمبة LED")
	assert.Contains(t, resolve(t, "SKU-1001 بكم؟"), "كابل نحاس")
}

func TestResolveProductByTokenOverlap(t *testing.T) {
	got := resolve(t, "ما سعر كابل نحاس؟")
	assert.Contains(t, got, "كابل نحاس 1.5مم")
	assert.Contains(t, got, "12.50")
}

func TestFindBySubstring(t *testing.T) {
	// Uch harfdan uzun token kifoya; qisqa tokenlar e'tiborga olinmaydi.
	found, ok := findBySubstring(resolverProducts, NormalizeArabic("لمبة"))
	assert.True(t, ok)
	assert.Equal(t, "لمبة LED", found.FirstString("name"))

	_, ok = findBySubstring(resolverProducts, "من كم")
	assert.False(t, ok)
}

func TestResolveProductNotFound(t *testing.T) {
	assert.Equal(t, msgProductNotFound, resolve(t, "سعر جهاز غير موجود إطلاقاً"))
}

func TestFormatProductInfoFallbacks(t *testing.T) {
	numeric := resolverProducts[0]
	assert.Equal(t, "🔎 كابل نحاس 1.5مم — السعر: 12.50 — المخزون: 40", formatProductInfo(numeric))

	stringPrice := resolverProducts[2]
	got := formatProductInfo(stringPrice)
	assert.Contains(t, got, "حسب الطلب")
	assert.Contains(t, got, "N/A")

	salePrice := resolverProducts[1]
	got = formatProductInfo(salePrice)
	assert.Contains(t, got, "7.75")
	assert.Contains(t, got, "3")
}
