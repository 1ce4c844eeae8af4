package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/repository/chathistory"
	"github.com/farhadzaidi/medassist/internal/services/ai"
	"github.com/farhadzaidi/medassist/internal/session"
)

// ChatReply is the outcome of one chat exchange.
type ChatReply struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatService drives the assistant conversation. Transcripts live in the
// injected session registry; history rows are written only for callers with
// an authenticated user id.
type ChatService struct {
	provider    ai.CompletionProvider
	sessions    *session.Registry[[]ai.Message]
	historyRepo chathistory.ChatHistoryRepository
	logger      Logger
}

func NewChatService(provider ai.CompletionProvider, sessions *session.Registry[[]ai.Message], historyRepo chathistory.ChatHistoryRepository, logger Logger) *ChatService {
	return &ChatService{
		provider:    provider,
		sessions:    sessions,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// SendMessage continues the conversation behind sessionID, or opens a new
// one when sessionID is empty. userID of zero means anonymous: the exchange
// is not persisted.
func (s *ChatService) SendMessage(ctx context.Context, userID uint, sessionID, message string) (*ChatReply, error) {
	if message == "" {
		return nil, apperr.Validation("Message is required")
	}

	var transcript []ai.Message
	if sessionID == "" {
		sessionID = uuid.NewString()
		transcript = []ai.Message{{Role: ai.RoleSystem, Content: assistantPrompt}}
		s.logger.Debug("chat session opened", "session_id", sessionID)
	} else {
		held, ok := s.sessions.Get(sessionID)
		if !ok {
			return nil, apperr.NotFound("Unknown or expired chat session")
		}
		transcript = held
	}

	transcript = append(transcript, ai.Message{Role: ai.RoleUser, Content: message})

	reply, err := s.provider.Complete(ctx, transcript)
	if err != nil {
		s.logger.Error("chat completion failed", "error", err, "session_id", sessionID)
		return nil, apperr.Dependency("Assistant is unavailable", err)
	}

	transcript = append(transcript, ai.Message{Role: ai.RoleAssistant, Content: reply})
	s.sessions.Put(sessionID, transcript)

	if userID != 0 {
		s.persistExchange(ctx, userID, message, reply)
	}

	return &ChatReply{
		SessionID: sessionID,
		Message:   reply,
		Timestamp: time.Now().UTC(),
	}, nil
}

// persistExchange best-effort saves both sides of the exchange. A failed
// write is logged but does not fail the chat response.
func (s *ChatService) persistExchange(ctx context.Context, userID uint, message, reply string) {
	if _, err := s.historyRepo.Create(ctx, &domain.ChatHistory{UserID: userID, Message: message, IsUser: true}); err != nil {
		s.logger.Warn("failed to save user message", "error", err, "user_id", userID)
		return
	}
	if _, err := s.historyRepo.Create(ctx, &domain.ChatHistory{UserID: userID, Message: reply, IsUser: false}); err != nil {
		s.logger.Warn("failed to save assistant message", "error", err, "user_id", userID)
	}
}

// History returns the caller's chat history oldest first.
func (s *ChatService) History(ctx context.Context, userID uint) ([]domain.ChatHistory, error) {
	entries, err := s.historyRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("could not fetch chat history", err)
	}
	return entries, nil
}

// SaveMessage stores a single history entry on the caller's behalf.
func (s *ChatService) SaveMessage(ctx context.Context, userID uint, message string, isUser bool) (*domain.ChatHistory, error) {
	if message == "" {
		return nil, apperr.Validation("Message is required")
	}
	entry, err := s.historyRepo.Create(ctx, &domain.ChatHistory{UserID: userID, Message: message, IsUser: isUser})
	if err != nil {
		return nil, apperr.Internal("could not save chat message", err)
	}
	return entry, nil
}

// ClearHistory removes all of the caller's history entries.
func (s *ChatService) ClearHistory(ctx context.Context, userID uint) (int64, error) {
	deleted, err := s.historyRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, apperr.Internal("could not delete chat history", err)
	}
	s.logger.Info("chat history cleared", "user_id", userID, "deleted", deleted)
	return deleted, nil
}
