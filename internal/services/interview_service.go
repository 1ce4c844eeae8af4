package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/services/ai"
	"github.com/farhadzaidi/medassist/internal/session"
)

// Exchange is one question/answer pair collected during an interview.
type Exchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// InterviewService drives the SOAP intake interview: a transcript held in
// the session registry accumulates one question per turn until the client
// decides to stop and calls GenerateNotes, which is stateless.
type InterviewService struct {
	provider ai.CompletionProvider
	sessions *session.Registry[[]ai.Message]
	logger   Logger
}

func NewInterviewService(provider ai.CompletionProvider, sessions *session.Registry[[]ai.Message], logger Logger) *InterviewService {
	return &InterviewService{
		provider: provider,
		sessions: sessions,
		logger:   logger,
	}
}

// Start opens an interview from the patient's initial description and
// returns the first question together with the new session id.
func (s *InterviewService) Start(ctx context.Context, description string) (sessionID, firstQuestion string, err error) {
	if strings.TrimSpace(description) == "" {
		return "", "", apperr.Validation("Patient description is required")
	}

	transcript := []ai.Message{
		{Role: ai.RoleSystem, Content: interviewerPrompt},
		{Role: ai.RoleUser, Content: description},
	}

	question, err := s.provider.Complete(ctx, transcript)
	if err != nil {
		s.logger.Error("interview start failed", "error", err)
		return "", "", apperr.Dependency("Could not start interview", err)
	}

	sessionID = uuid.NewString()
	transcript = append(transcript, ai.Message{Role: ai.RoleAssistant, Content: question})
	s.sessions.Put(sessionID, transcript)

	s.logger.Info("interview started", "session_id", sessionID)
	return sessionID, question, nil
}

// Answer records the patient's answer and returns the next question.
// An unknown or expired session id fails with NotFound; this also covers
// sessions lost to a process restart.
func (s *InterviewService) Answer(ctx context.Context, sessionID, answer string) (nextQuestion string, err error) {
	if sessionID == "" || strings.TrimSpace(answer) == "" {
		return "", apperr.Validation("Session id and answer are required")
	}

	transcript, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", apperr.NotFound("Unknown or expired interview session")
	}

	transcript = append(transcript, ai.Message{Role: ai.RoleUser, Content: answer})

	question, err := s.provider.Complete(ctx, transcript)
	if err != nil {
		s.logger.Error("interview answer failed", "error", err, "session_id", sessionID)
		return "", apperr.Dependency("Could not continue interview", err)
	}

	transcript = append(transcript, ai.Message{Role: ai.RoleAssistant, Content: question})
	s.sessions.Put(sessionID, transcript)

	return question, nil
}

// GenerateNotes renders collected exchanges into SOAP notes. Pure
// request/response; no session involved.
func (s *InterviewService) GenerateNotes(ctx context.Context, exchanges []Exchange) (string, error) {
	if len(exchanges) == 0 {
		return "", apperr.Validation("At least one exchange is required")
	}

	var b strings.Builder
	for _, e := range exchanges {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n\n", e.Question, e.Answer)
	}

	transcript := []ai.Message{
		{Role: ai.RoleSystem, Content: soapPrompt},
		{Role: ai.RoleUser, Content: b.String()},
	}

	notes, err := s.provider.Complete(ctx, transcript)
	if err != nil {
		s.logger.Error("SOAP generation failed", "error", err)
		return "", apperr.Dependency("Failed to generate SOAP notes", err)
	}
	return notes, nil
}
