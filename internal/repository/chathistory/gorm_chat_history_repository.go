package chathistory

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/farhadzaidi/medassist/internal/domain"
)

type gormChatHistoryRepository struct {
	db *gorm.DB
}

func NewGormChatHistoryRepository(db *gorm.DB) ChatHistoryRepository {
	return &gormChatHistoryRepository{db: db}
}

func (r *gormChatHistoryRepository) Create(ctx context.Context, entry *domain.ChatHistory) (*domain.ChatHistory, error) {
	if entry.UserID == 0 {
		return nil, errors.New("invalid user ID")
	}
	if entry.Message == "" {
		return nil, errors.New("message is required")
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		log.Printf("[ChatHistoryRepository] Database error saving message for user ID %d: %v", entry.UserID, err)
		return nil, errors.New("database error saving chat message")
	}
	return entry, nil
}

// FindByUserID returns the user's history ordered oldest first.
func (r *gormChatHistoryRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.ChatHistory, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var entries []domain.ChatHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		log.Printf("[ChatHistoryRepository] Database error fetching history for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching chat history")
	}
	return entries, nil
}

// DeleteByUserID removes every entry owned by userID and reports how many
// rows went away. Other users' entries are untouched.
func (r *gormChatHistoryRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	if userID == 0 {
		return 0, errors.New("invalid user ID")
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.ChatHistory{})
	if result.Error != nil {
		log.Printf("[ChatHistoryRepository] Database error deleting history for user ID %d: %v", userID, result.Error)
		return 0, errors.New("database error deleting chat history")
	}
	return result.RowsAffected, nil
}
