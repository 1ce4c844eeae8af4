package services

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/repository/report"
)

// ReportService manages saved SOAP notes and document analyses.
type ReportService struct {
	reportRepo report.ReportRepository
	markdown   goldmark.Markdown
	logger     Logger
}

func NewReportService(reportRepo report.ReportRepository, logger Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		markdown:   goldmark.New(),
		logger:     logger,
	}
}

func (s *ReportService) Save(ctx context.Context, userID uint, title, content, reportType string) (*domain.SavedReport, error) {
	rep := &domain.SavedReport{
		UserID:     userID,
		Title:      title,
		Content:    content,
		ReportType: reportType,
	}
	if err := rep.IsValid(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	saved, err := s.reportRepo.Create(ctx, rep)
	if err != nil {
		return nil, apperr.Internal("could not save report", err)
	}

	s.logger.Info("report saved", "report_id", saved.ID, "user_id", userID, "type", reportType)
	return saved, nil
}

func (s *ReportService) List(ctx context.Context, userID uint) ([]domain.SavedReport, error) {
	reports, err := s.reportRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("could not fetch reports", err)
	}
	return reports, nil
}

func (s *ReportService) Delete(ctx context.Context, id, userID uint) error {
	err := s.reportRepo.Delete(ctx, id, userID)
	if err == report.ErrReportNotFound {
		return apperr.NotFound("Report not found")
	}
	if err != nil {
		return apperr.Internal("could not delete report", err)
	}
	return nil
}

// RenderHTML returns the report's stored markdown rendered to HTML.
func (s *ReportService) RenderHTML(ctx context.Context, id, userID uint) (string, error) {
	rep, err := s.reportRepo.FindByIDAndUserID(ctx, id, userID)
	if err == report.ErrReportNotFound {
		return "", apperr.NotFound("Report not found")
	}
	if err != nil {
		return "", apperr.Internal("could not load report", err)
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(rep.Content), &buf); err != nil {
		return "", apperr.Internal("could not render report", err)
	}
	return buf.String(), nil
}
