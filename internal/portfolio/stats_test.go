package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

func price(v float64) *float64 { return &v }

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.AvgProgress)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.Zero(t, stats.TotalValue)
	assert.Len(t, stats.StatusCounts, 4)
	for _, status := range models.ProjectStatuses {
		assert.Equal(t, 0, stats.StatusCounts[status])
	}
}

func TestAggregate_Totals(t *testing.T) {
	projects := []models.Project{
		{Status: models.ProjectStatusInProgress, TotalUnits: 26, CompletedUnits: 18, Progress: 75, Price: price(2_500_000_000)},
		{Status: models.ProjectStatusNearCompletion, TotalUnits: 235, CompletedUnits: 215, Progress: 92, Price: price(8_500_000_000)},
		{Status: models.ProjectStatusInProgress, TotalUnits: 406, CompletedUnits: 180, Progress: 45},
	}

	stats := Aggregate(projects)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 667, stats.TotalUnits)
	assert.Equal(t, 413, stats.CompletedUnits)
	// (75+92+45)/3 = 70.67
	assert.Equal(t, 71, stats.AvgProgress)
	assert.Equal(t, 2, stats.StatusCounts[models.ProjectStatusInProgress])
	assert.Equal(t, 1, stats.StatusCounts[models.ProjectStatusNearCompletion])
	assert.Equal(t, 0, stats.StatusCounts[models.ProjectStatusPlanning])
	assert.Equal(t, 0, stats.StatusCounts[models.ProjectStatusCompleted])
	assert.Equal(t, 11_000_000_000.0, stats.TotalValue)
	assert.Equal(t, 62, stats.CompletionRate)
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	projects := []models.Project{
		{Status: models.ProjectStatusPlanning, Progress: 15},
		{Status: models.ProjectStatusPlanning, Progress: 16},
	}

	assert.Equal(t, 16, Aggregate(projects).AvgProgress)
}

func TestAggregate_ClampsStoredProgress(t *testing.T) {
	projects := []models.Project{
		{Status: models.ProjectStatusCompleted, Progress: 140},
		{Status: models.ProjectStatusPlanning, Progress: -20},
	}

	assert.Equal(t, 50, Aggregate(projects).AvgProgress)
}

func TestAggregate_IgnoresUnknownStatusInCounts(t *testing.T) {
	projects := []models.Project{{Status: "archived", TotalUnits: 3}}

	stats := Aggregate(projects)

	assert.Equal(t, 1, stats.TotalProjects)
	assert.Equal(t, 3, stats.TotalUnits)
	assert.Len(t, stats.StatusCounts, 4)
}
