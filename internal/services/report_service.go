package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/portfolio-dashboard-api/internal/metrics"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/report"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
)

// ReportService builds downloadable report documents
type ReportService struct {
	projectRepo repository.ProjectRepository
	builder     *report.Builder
	narrator    NarrativeGenerator
}

// NewReportService creates a new ReportService. narrator may be nil.
func NewReportService(projectRepo repository.ProjectRepository, builder *report.Builder, narrator NarrativeGenerator) *ReportService {
	return &ReportService{
		projectRepo: projectRepo,
		builder:     builder,
		narrator:    narrator,
	}
}

// GenerateReportInput represents a report request
type GenerateReportInput struct {
	Request          report.Request
	IncludeNarrative bool
}

// GeneratedReport is an encoded report ready for download
type GeneratedReport struct {
	Document *report.Document
	FileName string
	Content  []byte
}

// Generate validates the request before reading any data, then builds and encodes the document
func (s *ReportService) Generate(ctx context.Context, input GenerateReportInput) (*GeneratedReport, error) {
	if err := input.Request.Validate(); err != nil {
		return nil, err
	}
	if input.IncludeNarrative && s.narrator == nil {
		return nil, ErrAIServiceNotConfigured
	}

	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	doc, err := s.builder.Build(input.Request, projects)
	if err != nil {
		return nil, err
	}

	if input.IncludeNarrative {
		stats := portfolio.Aggregate(doc.Projects)
		narrative, err := s.narrator.GenerateReportNarrative(ctx, stats, doc.Projects)
		if err != nil {
			return nil, fmt.Errorf("failed to generate narrative: %w", err)
		}
		doc.Narrative = narrative
	}

	content, err := report.Encode(doc)
	if err != nil {
		return nil, err
	}

	metrics.IncrementReport(string(doc.Type))
	return &GeneratedReport{
		Document: doc,
		FileName: s.builder.FileName(doc),
		Content:  content,
	}, nil
}
