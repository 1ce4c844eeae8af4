package report

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/farhadzaidi/medassist/internal/domain"
)

var (
	ErrReportNotFound = errors.New("report not found")
)

type gormReportRepository struct {
	db *gorm.DB
}

func NewGormReportRepository(db *gorm.DB) ReportRepository {
	return &gormReportRepository{db: db}
}

func (r *gormReportRepository) Create(ctx context.Context, report *domain.SavedReport) (*domain.SavedReport, error) {
	if report.UserID == 0 {
		return nil, errors.New("invalid user ID")
	}
	if err := report.IsValid(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		log.Printf("[ReportRepository] Database error saving report for user ID %d: %v", report.UserID, err)
		return nil, errors.New("database error saving report")
	}
	return report, nil
}

// FindByUserID returns the user's reports newest first.
func (r *gormReportRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.SavedReport, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}

	var reports []domain.SavedReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reports).Error
	if err != nil {
		log.Printf("[ReportRepository] Database error fetching reports for user ID %d: %v", userID, err)
		return nil, errors.New("database error fetching reports")
	}
	return reports, nil
}

func (r *gormReportRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*domain.SavedReport, error) {
	if id == 0 || userID == 0 {
		return nil, errors.New("invalid report ID or user ID")
	}

	var rep domain.SavedReport
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rep).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		log.Printf("[ReportRepository] Database error finding report ID %d for user ID %d: %v", id, userID, err)
		return nil, errors.New("database error finding report")
	}
	return &rep, nil
}

// Delete removes a report only when it belongs to userID.
func (r *gormReportRepository) Delete(ctx context.Context, id, userID uint) error {
	if id == 0 || userID == 0 {
		return errors.New("invalid report ID or user ID")
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.SavedReport{})
	if result.Error != nil {
		log.Printf("[ReportRepository] Database error deleting report ID %d for user ID %d: %v", id, userID, result.Error)
		return errors.New("database error deleting report")
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
