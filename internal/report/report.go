// Package report builds the downloadable JSON report documents of the portfolio.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
)

type Type string

const (
	TypeWeekly        Type = "weekly"
	TypeMonthly       Type = "monthly"
	TypeCustom        Type = "custom"
	TypeComprehensive Type = "comprehensive"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWeekly, TypeMonthly, TypeCustom, TypeComprehensive:
		return true
	}
	return false
}

// Categories of a custom report.
var Categories = []string{"progress", "financial", "status", "milestone", "quality"}

// DateRanges accepted by a custom report.
var DateRanges = []string{"last-week", "last-month", "last-quarter", "ytd", "custom"}

var (
	ErrInvalidType      = fmt.Errorf("%w: unknown report type", portfolio.ErrInvalid)
	ErrMissingCategory  = fmt.Errorf("%w: custom reports require a category", portfolio.ErrInvalid)
	ErrInvalidCategory  = fmt.Errorf("%w: unknown report category", portfolio.ErrInvalid)
	ErrMissingDateRange = fmt.Errorf("%w: custom reports require a date range", portfolio.ErrInvalid)
	ErrInvalidDateRange = fmt.Errorf("%w: unknown date range", portfolio.ErrInvalid)
)

// Request describes the report to produce.
type Request struct {
	Type      Type             `json:"type"`
	Category  string           `json:"category,omitempty"`
	DateRange string           `json:"dateRange,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	Filter    portfolio.Filter `json:"filters"`
}

// Validate checks the request without touching any data.
func (r Request) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, r.Type)
	}
	if r.Type != TypeCustom {
		return nil
	}
	if r.Category == "" {
		return ErrMissingCategory
	}
	if !slices.Contains(Categories, r.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, r.Category)
	}
	if r.DateRange == "" {
		return ErrMissingDateRange
	}
	if !slices.Contains(DateRanges, r.DateRange) {
		return fmt.Errorf("%w: %q", ErrInvalidDateRange, r.DateRange)
	}
	return nil
}

// Document is the serialized report. Summary is set only for comprehensive reports.
type Document struct {
	Type         Type             `json:"type"`
	Category     string           `json:"category,omitempty"`
	DateRange    string           `json:"dateRange,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	Generated    time.Time        `json:"generated"`
	Filters      portfolio.Filter `json:"filters"`
	ProjectCount int              `json:"projectCount"`
	Summary      *portfolio.Stats `json:"summary,omitempty"`
	Narrative    string           `json:"narrative,omitempty"`
	Projects     []models.Project `json:"projects"`
}

// Builder produces documents stamped with Now and named with Prefix.
type Builder struct {
	Prefix string
	Now    func() time.Time
}

func NewBuilder(prefix string) *Builder {
	return &Builder{Prefix: prefix, Now: time.Now}
}

// Build filters the projects and assembles the document. The input order is kept.
func (b *Builder) Build(req Request, projects []models.Project) (*Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Filter.Status == "" {
		req.Filter.Status = portfolio.StatusAll
	}

	selected := req.Filter.Apply(projects)
	doc := &Document{
		Type:         req.Type,
		Category:     req.Category,
		DateRange:    req.DateRange,
		Notes:        req.Notes,
		Generated:    b.Now().UTC(),
		Filters:      req.Filter,
		ProjectCount: len(selected),
		Projects:     selected,
	}
	if req.Type == TypeComprehensive {
		summary := portfolio.Aggregate(selected)
		doc.Summary = &summary
	}
	return doc, nil
}

// FileName returns <prefix>-<type>[-<category>]-report-<YYYY-MM-DD>.json.
func (b *Builder) FileName(doc *Document) string {
	return FileName(b.Prefix, doc.Type, doc.Category, doc.Generated)
}

func FileName(prefix string, reportType Type, category string, generated time.Time) string {
	name := fmt.Sprintf("%s-%s", prefix, reportType)
	if reportType == TypeCustom && category != "" {
		name += "-" + category
	}
	return fmt.Sprintf("%s-report-%s.json", name, generated.UTC().Format("2006-01-02"))
}

// Encode serializes the document as indented UTF-8 JSON.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("report: nil document")
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return buf.Bytes(), nil
}
