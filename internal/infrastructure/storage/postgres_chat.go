package storage

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"database/sql"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
	"github.com/yourusername/shahrazad-assistant/internal/domain/entity"
	"github.com/yourusername/shahrazad-assistant/internal/domain/repository"
)

type postgresChatRepository struct {
	db *sql.DB
}

// NewPostgresChatRepository postgres chat repository yaratish
func NewPostgresChatRepository(dsn string) (repository.ChatRepository, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	schema := `
CREATE TABLE IF NOT EXISTS chat_messages (
	id TEXT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	username TEXT,
	text TEXT,
	response TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_user_time ON chat_messages (user_id, created_at DESC);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create chat_messages table: %w", err)
	}

	return &postgresChatRepository{db: db}, nil
}

func (p *postgresChatRepository) SaveMessage(ctx context.Context, message entity.ChatMessage) error {
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
	INSERT INTO chat_messages (id, user_id, username, text, response, created_at)
	VALUES ($1,$2,$3,$4,$5,$6)
	`, message.ID, message.UserID, message.Username, message.Text, message.Response, message.Timestamp)
	return err
}

func (p *postgresChatRepository) GetHistory(ctx context.Context, userID int64, limit int) ([]entity.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := p.db.QueryContext(ctx, `
	SELECT id, user_id, username, text, response, created_at
	FROM chat_messages
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []entity.ChatMessage
	for rows.Next() {
		var msg entity.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Username, &msg.Text, &msg.Response, &msg.Timestamp); err != nil {
			return nil, err
		}
		res = append(res, msg)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp) })
	return res, rows.Err()
}

func (p *postgresChatRepository) ClearHistory(ctx context.Context, userID int64) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID)
	return err
}

// NewChatRepositoryFromEnv DSN bo'lsa postgres, aks holda memory.
func NewChatRepositoryFromEnv(dsn string) repository.ChatRepository {
	if strings.TrimSpace(dsn) == "" {
		return NewMemoryChatRepository(constants.DefaultMaxContextSize)
	}
	repo, err := NewPostgresChatRepository(dsn)
	if err != nil {
		log.Printf("chat store: Postgres ulanmadi, memory store ga qaytdi: %v", err)
		return NewMemoryChatRepository(constants.DefaultMaxContextSize)
	}
	return repo
}
