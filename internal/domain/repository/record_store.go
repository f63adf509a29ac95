package repository

import (
	"context"

	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
)

// RecordStore do'kon ma'lumotlariga read-only kirish.
// Assistant faqat o'qiydi; yozish boshqa qatlamlarning ishi.
type RecordStore interface {
	// GetAllRecords returns every record in a named collection, in
	// whatever order the store provides.
	GetAllRecords(ctx context.Context, collection string) ([]entity.Record, error)

	// GetLowStockProducts returns products whose stock is at or under
	// the given threshold.
	GetLowStockProducts(ctx context.Context, threshold float64) ([]entity.Record, error)

	// GetRecordById ID bo'yicha bitta yozuvni olish (topilmasa nil).
	GetRecordById(ctx context.Context, collection, id string) (entity.Record, error)
}
