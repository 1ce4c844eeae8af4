package report

import (
	"context"

	"github.com/farhadzaidi/medassist/internal/domain"
)

// ReportRepository abstracts persistence for saved reports.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.SavedReport) (*domain.SavedReport, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.SavedReport, error)
	FindByIDAndUserID(ctx context.Context, id, userID uint) (*domain.SavedReport, error)
	Delete(ctx context.Context, id, userID uint) error
}
