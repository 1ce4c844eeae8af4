package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/services/ai"
	"github.com/farhadzaidi/medassist/internal/session"
)

func newInterviewService(t *testing.T, provider ai.CompletionProvider) *InterviewService {
	t.Helper()
	sessions := session.New[[]ai.Message](100, time.Minute)
	t.Cleanup(sessions.Close)
	return NewInterviewService(provider, sessions, testLogger())
}

func TestInterviewStartAndAnswerFlow(t *testing.T) {
	provider := &recordingProvider{replies: []string{"What brings you in today?", "How long has this been going on?"}}
	svc := newInterviewService(t, provider)
	ctx := context.Background()

	sessionID, question, err := svc.Start(ctx, "I have had headaches for a week")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sessionID == "" || question != "What brings you in today?" {
		t.Fatalf("start returned (%q, %q)", sessionID, question)
	}

	next, err := svc.Answer(ctx, sessionID, "Mostly in the mornings")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if next != "How long has this been going on?" {
		t.Errorf("next question = %q", next)
	}

	// The follow-up call must see the whole interview so far.
	sent := provider.calls[1]
	if len(sent) != 4 {
		t.Fatalf("transcript length = %d, want 4", len(sent))
	}
	if sent[0].Role != ai.RoleSystem {
		t.Errorf("transcript must open with the interviewer prompt")
	}
	if sent[3].Content != "Mostly in the mornings" {
		t.Errorf("answer missing from transcript: %+v", sent[3])
	}
}

func TestInterviewStartRequiresDescription(t *testing.T) {
	svc := newInterviewService(t, &recordingProvider{})

	_, _, err := svc.Start(context.Background(), "   ")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestInterviewAnswerUnknownSessionIsNotFound(t *testing.T) {
	svc := newInterviewService(t, &recordingProvider{})

	_, err := svc.Answer(context.Background(), "gone", "still here")
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestGenerateNotesFormatsExchanges(t *testing.T) {
	provider := &recordingProvider{replies: []string{"# SOAP Notes\n..."}}
	svc := newInterviewService(t, provider)

	notes, err := svc.GenerateNotes(context.Background(), []Exchange{
		{Question: "What hurts?", Answer: "My head"},
		{Question: "Since when?", Answer: "A week"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(notes, "# SOAP Notes") {
		t.Errorf("notes = %q", notes)
	}

	sent := provider.calls[0]
	if len(sent) != 2 || sent[0].Role != ai.RoleSystem {
		t.Fatalf("unexpected request: %+v", sent)
	}
	body := sent[1].Content
	for _, want := range []string{"Q: What hurts?\nA: My head\n", "Q: Since when?\nA: A week\n"} {
		if !strings.Contains(body, want) {
			t.Errorf("request body missing %q:\n%s", want, body)
		}
	}
}

func TestGenerateNotesRequiresExchanges(t *testing.T) {
	svc := newInterviewService(t, &recordingProvider{})

	_, err := svc.GenerateNotes(context.Background(), nil)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.KindOf(err))
	}
}
