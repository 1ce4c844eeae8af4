package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/services/ai"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps the schema alive across gorm's pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.ChatHistory{}, &domain.SavedReport{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// recordingProvider replays canned replies and records every transcript it
// was handed.
type recordingProvider struct {
	replies []string
	calls   [][]ai.Message
}

func (p *recordingProvider) Complete(ctx context.Context, messages []ai.Message) (string, error) {
	copied := make([]ai.Message, len(messages))
	copy(copied, messages)
	p.calls = append(p.calls, copied)
	if len(p.replies) == 0 {
		return "ok", nil
	}
	reply := p.replies[0]
	if len(p.replies) > 1 {
		p.replies = p.replies[1:]
	}
	return reply, nil
}

// failingProvider always errors.
type failingProvider struct{}

func (failingProvider) Complete(ctx context.Context, messages []ai.Message) (string, error) {
	return "", errors.New("provider down")
}

func testLogger() Logger { return &NoOpLogger{} }
