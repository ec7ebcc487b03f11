package migration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/seed"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestProjectStatusFromSeed(t *testing.T) {
	tests := []struct {
		in   string
		want models.ProjectStatus
	}{
		{"planning", models.ProjectStatusPlanning},
		{"in-progress", models.ProjectStatusInProgress},
		{"near-completion", models.ProjectStatusNearCompletion},
		{"completed", models.ProjectStatusCompleted},
		{"on-hold", models.ProjectStatusPlanning},
		{"", models.ProjectStatusPlanning},
		{"Completed", models.ProjectStatusPlanning},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectStatusFromSeed(tt.in))
		})
	}
}

func TestSeedStatusFromProject_RoundTrip(t *testing.T) {
	for _, status := range models.ProjectStatuses {
		assert.Equal(t, status, ProjectStatusFromSeed(SeedStatusFromProject(status)))
	}
	assert.Equal(t, "planning", SeedStatusFromProject("Archived"))
}

func TestToProject(t *testing.T) {
	p := seed.Project{
		ID:             "amazon",
		Name:           "AMAZON",
		Status:         "near-completion",
		Progress:       92,
		TotalUnits:     26,
		CompletedUnits: 18,
		Location:       "Gwarinpa District, Abuja, Nigeria",
		Budget:         "₦2.5B",
		Challenges:     []string{"Weather delays"},
	}

	project := ToProject(p)

	assert.Equal(t, "amazon", project.ID)
	assert.Equal(t, "AMAZON", project.Title)
	assert.Equal(t, models.ProjectStatusNearCompletion, project.Status)
	require.NotNil(t, project.Description)
	assert.Equal(t, "AMAZON Estate Development Project", *project.Description)
	require.NotNil(t, project.Price)
	assert.InDelta(t, 2_500_000_000, *project.Price, 0.5)
	assert.Equal(t, 5000, *project.AreaSqft)
	assert.Equal(t, 3, *project.Bedrooms)
	assert.Equal(t, 2, *project.Bathrooms)
	assert.Equal(t, []string{"Weather delays"}, []string(project.Challenges))
	assert.NotNil(t, project.ActivitiesInProgress)
	assert.Empty(t, project.ActivitiesInProgress)
}

func TestToProject_UnparseableBudget(t *testing.T) {
	project := ToProject(seed.Project{ID: "x", Name: "X", Budget: "TBD"})

	require.NotNil(t, project.Price)
	assert.Zero(t, *project.Price)
}

func TestToUnits(t *testing.T) {
	bedrooms := 4
	p := seed.Project{
		ID: "capri",
		Units: []seed.Unit{
			{
				ID: "capri-unit-1", UnitNumber: "CAPRI-RES-001", Type: "Villa", Bedrooms: &bedrooms,
				Status: "behind-schedule", Progress: 10,
				Activities:  seed.Activities{Foundation: "completed", Structure: "behind-schedule", Roofing: "in-progress", MEP: "in-progress", Interior: "in-progress", Finishing: "in-progress"},
				Challenges:  []string{"Weather impact"},
				LastUpdated: "2024-05-30T08:00:00Z",
			},
			{
				ID: "capri-infra-1", UnitNumber: "CAPRI-INF-001", Type: "Infrastructure", SubType: "Mosque",
				Status: "completed", Progress: 100,
			},
		},
	}

	units := ToUnits(p, fixedNow)
	require.Len(t, units, 2)

	assert.Equal(t, "capri", units[0].ProjectID)
	assert.Equal(t, models.UnitStatusBehindSchedule, units[0].Status)
	assert.Equal(t, models.UnitStatusCompleted, units[0].Activities.Foundation)
	assert.Nil(t, units[0].SubType)
	assert.Equal(t, time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC), units[0].LastUpdated)

	require.NotNil(t, units[1].SubType)
	assert.Equal(t, models.InfrastructureMosque, *units[1].SubType)
	assert.Nil(t, units[1].Bedrooms)
	assert.Equal(t, fixedNow, units[1].LastUpdated)
	assert.NotNil(t, units[1].Photos)
}
