package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
)

var ErrAIServiceNotConfigured = errors.New("AI service is not configured")

// NarrativeGenerator writes a short prose summary for a report.
type NarrativeGenerator interface {
	GenerateReportNarrative(ctx context.Context, stats portfolio.Stats, projects []models.Project) (string, error)
}

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// GenerateReportNarrative asks the model for an executive summary of the portfolio.
func (s *AIService) GenerateReportNarrative(ctx context.Context, stats portfolio.Stats, projects []models.Project) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrAIServiceNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You write concise executive summaries for a real-estate construction portfolio. Plain prose, no markdown, at most 150 words.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: narrativePrompt(stats, projects),
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func narrativePrompt(stats portfolio.Stats, projects []models.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Portfolio: %d projects, %d of %d units completed (%d%%), average progress %d%%, total value %s.\n",
		stats.TotalProjects, stats.CompletedUnits, stats.TotalUnits, stats.CompletionRate,
		stats.AvgProgress, portfolio.FormatPrice(stats.TotalValue))
	for _, status := range models.ProjectStatuses {
		fmt.Fprintf(&b, "%s: %d\n", status, stats.StatusCounts[status])
	}

	b.WriteString("\nProjects:\n")
	for _, p := range projects {
		fmt.Fprintf(&b, "- %s (%s): %s, %d%% complete, phase %q", p.Title, p.Location, p.Status, p.Progress, p.CurrentPhase)
		if len(p.Challenges) > 0 {
			fmt.Fprintf(&b, ", challenges: %s", strings.Join(p.Challenges, "; "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
