package domain

import (
	"errors"
	"time"
)

const (
	ReportTypeSOAP     = "soap"
	ReportTypeAnalysis = "analysis"
)

// SavedReport is a generated document (SOAP notes or document analysis)
// a user chose to keep. Content is stored as markdown.
type SavedReport struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"not null"`
	ReportType string    `json:"type" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (r *SavedReport) IsValid() error {
	if r.Title == "" || r.Content == "" {
		return errors.New("title and content are required")
	}
	if r.ReportType != ReportTypeSOAP && r.ReportType != ReportTypeAnalysis {
		return errors.New("report type must be soap or analysis")
	}
	return nil
}
