package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
)

// RecordWriter to'ldirish uchun yozish operatsiyalari (seed/import).
// Assistant o'zi faqat repository.RecordStore orqali o'qiydi.
type RecordWriter interface {
	SaveRecord(ctx context.Context, collection string, record entity.Record) error
	SaveMany(ctx context.Context, collection string, records []entity.Record) error
}

type memoryRecordStore struct {
	mu          sync.RWMutex
	collections map[string][]entity.Record
}

// NewMemoryRecordStore in-memory record store yaratish
func NewMemoryRecordStore() *memoryRecordStore {
	return &memoryRecordStore{
		collections: make(map[string][]entity.Record),
	}
}

var _ repository.RecordStore = (*memoryRecordStore)(nil)
var _ RecordWriter = (*memoryRecordStore)(nil)

// SaveRecord yozuvni saqlash
func (m *memoryRecordStore) SaveRecord(ctx context.Context, collection string, record entity.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[collection] = append(m.collections[collection], record)
	return nil
}

// SaveMany ko'p yozuvlarni saqlash
func (m *memoryRecordStore) SaveMany(ctx context.Context, collection string, records []entity.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.collections[collection] = append(m.collections[collection], records...)
	return nil
}

// GetAllRecords returns every record of a collection in insertion order.
func (m *memoryRecordStore) GetAllRecords(ctx context.Context, collection string) ([]entity.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.collections[collection]
	// Defensive copy so callers can safely iterate without the lock.
	out := make([]entity.Record, len(records))
	copy(out, records)
	return out, nil
}

// GetLowStockProducts stok miqdori chegaradan oshmagan mahsulotlar.
// Stok soni o'qib bo'lmaydigan yozuvlar hisobga olinmaydi.
func (m *memoryRecordStore) GetLowStockProducts(ctx context.Context, threshold float64) ([]entity.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.Record
	for _, p := range m.collections[constants.CollectionProducts] {
		if stock, ok := p.FirstNumber("stock", "quantity"); ok && stock <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetRecordById ID bo'yicha yozuvni olish (topilmasa nil, nil)
func (m *memoryRecordStore) GetRecordById(ctx context.Context, collection, id string) (entity.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, rec := range m.collections[collection] {
		if rec.FirstString("id") == id {
			return rec, nil
		}
	}
	return nil, nil
}

// LoadSeedFile JSON fayldan demo ma'lumotlarni yuklash. Fayl formati:
// {"products": [{...}], "invoices": [{...}], "customers": [{...}]}
func LoadSeedFile(ctx context.Context, writer RecordWriter, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var collections map[string][]entity.Record
	if err := json.Unmarshal(data, &collections); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for name, records := range collections {
		if err := writer.SaveMany(ctx, name, records); err != nil {
			return fmt.Errorf("seed collection %s: %w", name, err)
		}
	}
	return nil
}
