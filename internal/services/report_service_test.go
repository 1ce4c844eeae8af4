package services

import (
	"context"
	"strings"
	"testing"

	"github.com/farhadzaidi/medassist/internal/apperr"
	"github.com/farhadzaidi/medassist/internal/domain"
	"github.com/farhadzaidi/medassist/internal/repository/report"
)

func newReportService(t *testing.T) *ReportService {
	t.Helper()
	repo := report.NewGormReportRepository(newTestDB(t))
	return NewReportService(repo, testLogger())
}

func TestSaveAndListReports(t *testing.T) {
	svc := newReportService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, "Morning visit", "# SOAP Notes\ncontent", domain.ReportTypeSOAP)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected persisted report id")
	}
	if _, err := svc.Save(ctx, 2, "Someone else's", "content", domain.ReportTypeAnalysis); err != nil {
		t.Fatalf("save: %v", err)
	}

	reports, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 1 || reports[0].Title != "Morning visit" {
		t.Fatalf("list = %+v", reports)
	}
}

func TestSaveRejectsUnknownReportType(t *testing.T) {
	svc := newReportService(t)

	_, err := svc.Save(context.Background(), 1, "Title", "content", "diary")
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("kind = %v, want validation", apperr.KindOf(err))
	}
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	svc := newReportService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, "Mine", "content", domain.ReportTypeSOAP)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.Delete(ctx, saved.ID, 2); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("cross-user delete kind = %v, want not found", apperr.KindOf(err))
	}
	if err := svc.Delete(ctx, saved.ID, 1); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(ctx, saved.ID, 1); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("second delete kind = %v, want not found", apperr.KindOf(err))
	}
}

func TestRenderHTMLConvertsMarkdown(t *testing.T) {
	svc := newReportService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, 1, "Visit", "# SOAP Notes\n\nSome **bold** text.", domain.ReportTypeSOAP)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	html, err := svc.RenderHTML(ctx, saved.ID, 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<h1", "SOAP Notes", "<strong>bold</strong>"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q:\n%s", want, html)
		}
	}

	if _, err := svc.RenderHTML(ctx, saved.ID, 2); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("cross-user render kind = %v, want not found", apperr.KindOf(err))
	}
}
