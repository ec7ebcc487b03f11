package portfolio

import (
	"math"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

// Stats is the portfolio-level summary shown on the dashboard.
type Stats struct {
	TotalProjects  int                          `json:"totalProjects"`
	TotalUnits     int                          `json:"totalUnits"`
	CompletedUnits int                          `json:"completedUnits"`
	AvgProgress    int                          `json:"avgProgress"`
	CompletionRate int                          `json:"completionRate"`
	StatusCounts   map[models.ProjectStatus]int `json:"statusCounts"`
	TotalValue     float64                      `json:"totalValue"`
}

// Aggregate computes Stats over projects. An empty list yields zero values and
// every status present in StatusCounts.
func Aggregate(projects []models.Project) Stats {
	stats := Stats{
		TotalProjects: len(projects),
		StatusCounts:  make(map[models.ProjectStatus]int, len(models.ProjectStatuses)),
	}
	for _, status := range models.ProjectStatuses {
		stats.StatusCounts[status] = 0
	}

	progressSum := 0
	for _, p := range projects {
		stats.TotalUnits += p.TotalUnits
		stats.CompletedUnits += p.CompletedUnits
		progressSum += ClampProgress(p.Progress)
		if _, ok := stats.StatusCounts[p.Status]; ok {
			stats.StatusCounts[p.Status]++
		}
		if p.Price != nil {
			stats.TotalValue += *p.Price
		}
	}

	stats.AvgProgress = roundedMean(progressSum, len(projects))
	stats.CompletionRate = percentage(stats.CompletedUnits, stats.TotalUnits)

	return stats
}

func roundedMean(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}

func percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
