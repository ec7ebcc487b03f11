package dto

import (
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/report"
)

// GenerateReportRequest is the body of POST /api/reports
type GenerateReportRequest struct {
	Type             report.Type      `json:"type" binding:"required"`
	Category         string           `json:"category"`
	DateRange        string           `json:"dateRange"`
	Notes            string           `json:"notes"`
	Filters          portfolio.Filter `json:"filters"`
	IncludeNarrative bool             `json:"include_narrative"`
}

// ToReportRequest converts the body to a report request
func (r GenerateReportRequest) ToReportRequest() report.Request {
	return report.Request{
		Type:      r.Type,
		Category:  r.Category,
		DateRange: r.DateRange,
		Notes:     r.Notes,
		Filter:    r.Filters,
	}
}
