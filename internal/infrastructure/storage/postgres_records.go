package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
)

const (
	postgresConnectAttemptsDefault = 20
	postgresConnectDelayDefault    = 2 * time.Second
)

type postgresRecordStore struct {
	db *sql.DB
}

var _ repository.RecordStore = (*postgresRecordStore)(nil)
var _ RecordWriter = (*postgresRecordStore)(nil)

// NewPostgresRecordStore postgres record store yaratish (jadval yo'q
// bo'lsa ochiladi)
func NewPostgresRecordStore(dsn string) (*postgresRecordStore, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	schema := `
CREATE TABLE IF NOT EXISTS store_records (
	id BIGSERIAL PRIMARY KEY,
	collection TEXT NOT NULL,
	record_id TEXT,
	data JSONB NOT NULL,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_store_records_collection ON store_records (collection);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create store_records table: %w", err)
	}

	return &postgresRecordStore{db: db}, nil
}

func (p *postgresRecordStore) SaveRecord(ctx context.Context, collection string, record entity.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = p.db.ExecContext(ctx, `
	INSERT INTO store_records (collection, record_id, data)
	VALUES ($1,$2,$3)
	`, collection, record.FirstString("id"), data)
	return err
}

func (p *postgresRecordStore) SaveMany(ctx context.Context, collection string, records []entity.Record) error {
	for _, rec := range records {
		if err := p.SaveRecord(ctx, collection, rec); err != nil {
			return err
		}
	}
	return nil
}

func (p *postgresRecordStore) GetAllRecords(ctx context.Context, collection string) ([]entity.Record, error) {
	rows, err := p.db.QueryContext(ctx, `
	SELECT data FROM store_records
	WHERE collection = $1
	ORDER BY id`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Record
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec entity.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetLowStockProducts filtrlash Go tomonda: stok maydoni nomi yozuvdan
// yozuvga farq qiladi (stock/quantity), SQL da ishonchli ifodalab
// bo'lmaydi.
func (p *postgresRecordStore) GetLowStockProducts(ctx context.Context, threshold float64) ([]entity.Record, error) {
	products, err := p.GetAllRecords(ctx, constants.CollectionProducts)
	if err != nil {
		return nil, err
	}
	var out []entity.Record
	for _, prod := range products {
		if stock, ok := prod.FirstNumber("stock", "quantity"); ok && stock <= threshold {
			out = append(out, prod)
		}
	}
	return out, nil
}

func (p *postgresRecordStore) GetRecordById(ctx context.Context, collection, id string) (entity.Record, error) {
	row := p.db.QueryRowContext(ctx, `
	SELECT data FROM store_records
	WHERE collection = $1 AND (record_id = $2 OR data->>'id' = $2)
	LIMIT 1`, collection, id)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var rec entity.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// NewRecordStoreFromEnv POSTGRES_DSN berilgan bo'lsa postgres, aks
// holda (yoki ulanish muvaffaqiyatsiz bo'lsa) memory store qaytaradi.
func NewRecordStoreFromEnv(dsn string) (repository.RecordStore, RecordWriter) {
	if strings.TrimSpace(dsn) == "" {
		store := NewMemoryRecordStore()
		return store, store
	}
	store, err := NewPostgresRecordStore(dsn)
	if err != nil {
		log.Printf("record store: Postgres ulanmadi, memory store ga qaytdi: %v", err)
		mem := NewMemoryRecordStore()
		return mem, mem
	}
	return store, store
}

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	attempts := getenvInt("POSTGRES_CONNECT_MAX_ATTEMPTS", postgresConnectAttemptsDefault)
	delaySeconds := getenvInt("POSTGRES_CONNECT_RETRY_SECONDS", int(postgresConnectDelayDefault/time.Second))
	delay := time.Duration(delaySeconds) * time.Second
	if attempts <= 0 {
		attempts = postgresConnectAttemptsDefault
	}
	if delay <= 0 {
		delay = postgresConnectDelayDefault
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
