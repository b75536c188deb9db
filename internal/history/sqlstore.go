package history

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ChatMessage is a persisted conversation turn. The session id is a plain
// index so a session can hold any number of ordered messages.
type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"type:varchar(36);index;not null" json:"session_id"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_history" }

// SQLStore hands out durable per-session histories backed by one table.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) History(sessionID string) History {
	return &sqlHistory{db: s.db, sessionID: sessionID}
}

type sqlHistory struct {
	db        *gorm.DB
	sessionID string
}

func (h *sqlHistory) Append(ctx context.Context, msg Message) error {
	row := &ChatMessage{
		SessionID: h.sessionID,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
	return h.db.WithContext(ctx).Create(row).Error
}

func (h *sqlHistory) Messages(ctx context.Context) ([]Message, error) {
	var rows []ChatMessage
	if err := h.db.WithContext(ctx).
		Where("session_id = ?", h.sessionID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, Message{Role: r.Role, Content: r.Content, CreatedAt: r.CreatedAt})
	}
	return out, nil
}
