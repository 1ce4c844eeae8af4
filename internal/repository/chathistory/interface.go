package chathistory

import (
	"context"

	"github.com/farhadzaidi/medassist/internal/domain"
)

// ChatHistoryRepository abstracts persistence for per-user chat history.
type ChatHistoryRepository interface {
	Create(ctx context.Context, entry *domain.ChatHistory) (*domain.ChatHistory, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.ChatHistory, error)
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
}
