package repositories

import (
	"context"

	"gorm.io/gorm"

	"casamento/app/models/message"
	"casamento/pkg/database"
)

// MessageRepository persists guestbook entries.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a repository over the shared connection.
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		db: database.DB,
	}
}

// Create inserts one entry.
func (r *MessageRepository) Create(ctx context.Context, m *message.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns one page of entries, newest first, plus the total count.
func (r *MessageRepository) List(ctx context.Context, page, pageSize int) ([]message.Message, int64, error) {
	var messages []message.Message
	var total int64

	query := r.db.WithContext(ctx).Model(&message.Message{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error

	return messages, total, err
}
