package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

func completedActivities() models.Activities {
	return models.Activities{
		Foundation: models.UnitStatusCompleted,
		Structure:  models.UnitStatusCompleted,
		Roofing:    models.UnitStatusCompleted,
		MEP:        models.UnitStatusCompleted,
		Interior:   models.UnitStatusCompleted,
		Finishing:  models.UnitStatusCompleted,
	}
}

func validUnit() models.Unit {
	bedrooms := 3
	return models.Unit{
		ProjectID:  "amazon",
		UnitNumber: "AMAZON-RES-001",
		UnitType:   models.UnitTypeVilla,
		Bedrooms:   &bedrooms,
		Status:     models.UnitStatusInProgress,
		Progress:   40,
		Activities: completedActivities(),
	}
}

func TestClampProgress(t *testing.T) {
	assert.Equal(t, 0, ClampProgress(-5))
	assert.Equal(t, 55, ClampProgress(55))
	assert.Equal(t, 100, ClampProgress(250))
}

func TestValidateProject(t *testing.T) {
	p := models.Project{Status: models.ProjectStatusInProgress, TotalUnits: 10, CompletedUnits: 4, Progress: 120}
	assert.NoError(t, ValidateProject(&p))
	assert.Equal(t, 100, p.Progress)

	p = models.Project{Status: models.ProjectStatusInProgress, TotalUnits: 10, CompletedUnits: 11}
	assert.ErrorIs(t, ValidateProject(&p), ErrCompletedUnitsExceedTotal)

	p = models.Project{Status: models.ProjectStatusPlanning, TotalUnits: -1}
	assert.ErrorIs(t, ValidateProject(&p), ErrNegativeUnits)

	p = models.Project{Status: "in-progress"}
	assert.ErrorIs(t, ValidateProject(&p), ErrInvalidStatus)

	p = models.Project{Status: models.ProjectStatusCompleted, Progress: 90}
	assert.ErrorIs(t, ValidateProject(&p), ErrCompletedRequiresFull)

	p = models.Project{Status: models.ProjectStatusCompleted, Progress: 100}
	assert.NoError(t, ValidateProject(&p))

	p = models.Project{Status: models.ProjectStatusPlanning, Images: make([]string, 11)}
	assert.ErrorIs(t, ValidateProject(&p), ErrTooManyImages)
}

func TestValidateUnit_CompletedIffFullProgress(t *testing.T) {
	u := validUnit()
	assert.NoError(t, ValidateUnit(&u))

	u.Status = models.UnitStatusCompleted
	u.Progress = 99
	assert.ErrorIs(t, ValidateUnit(&u), ErrCompletedRequiresFull)

	u.Progress = 100
	assert.NoError(t, ValidateUnit(&u))

	u.Status = models.UnitStatusBehindSchedule
	assert.ErrorIs(t, ValidateUnit(&u), ErrFullRequiresCompleted)

	u.Progress = 180
	u.Status = models.UnitStatusCompleted
	assert.NoError(t, ValidateUnit(&u))
	assert.Equal(t, 100, u.Progress)
}

func TestValidateUnit_ActivitiesIndependentOfStatus(t *testing.T) {
	u := validUnit()
	u.Status = models.UnitStatusBehindSchedule
	u.Progress = 10

	assert.NoError(t, ValidateUnit(&u))
}

func TestValidateUnit_Enums(t *testing.T) {
	u := validUnit()
	u.UnitType = "Castle"
	assert.ErrorIs(t, ValidateUnit(&u), ErrInvalidUnitType)

	u = validUnit()
	u.Activities.MEP = "done"
	assert.ErrorIs(t, ValidateUnit(&u), ErrInvalidActivity)

	u = validUnit()
	u.Status = "Completed"
	assert.ErrorIs(t, ValidateUnit(&u), ErrInvalidStatus)

	u = validUnit()
	u.ProjectID = ""
	assert.ErrorIs(t, ValidateUnit(&u), ErrMissingProjectReference)
}

func TestValidateUnit_SubType(t *testing.T) {
	pool := models.InfrastructureSwimmingPool
	unknown := models.InfrastructureType("Helipad")

	u := validUnit()
	u.SubType = &pool
	assert.ErrorIs(t, ValidateUnit(&u), ErrSubTypeRequiresInfra)

	u = validUnit()
	u.UnitType = models.UnitTypeInfrastructure
	u.SubType = &pool
	assert.ErrorIs(t, ValidateUnit(&u), ErrBedroomsOnInfra)

	u.Bedrooms = nil
	assert.NoError(t, ValidateUnit(&u))

	u.SubType = &unknown
	assert.ErrorIs(t, ValidateUnit(&u), ErrInvalidSubType)
}

func TestSuggestUnitStatus(t *testing.T) {
	a := completedActivities()
	assert.Equal(t, models.UnitStatusCompleted, SuggestUnitStatus(a))

	a.Finishing = models.UnitStatusInProgress
	assert.Equal(t, models.UnitStatusInProgress, SuggestUnitStatus(a))

	a.Roofing = models.UnitStatusBehindSchedule
	assert.Equal(t, models.UnitStatusBehindSchedule, SuggestUnitStatus(a))
}

func TestSummarizeUnits(t *testing.T) {
	done := validUnit()
	done.Status = models.UnitStatusCompleted
	done.Progress = 100

	late := validUnit()
	late.Status = models.UnitStatusBehindSchedule
	late.Progress = 20
	late.Activities.Structure = models.UnitStatusBehindSchedule
	late.Challenges = []string{"Weather impact"}

	mixed := validUnit()
	mixed.Progress = 60

	summary := SummarizeUnits([]models.Unit{done, late, mixed})

	assert.Equal(t, 3, summary.TotalUnits)
	assert.Equal(t, 1, summary.StatusCounts[models.UnitStatusCompleted])
	assert.Equal(t, 1, summary.StatusCounts[models.UnitStatusBehindSchedule])
	assert.Equal(t, 1, summary.StatusCounts[models.UnitStatusInProgress])
	assert.Equal(t, 60, summary.AverageProgress)
	assert.Equal(t, 1, summary.UnitsWithChallenges)
	// mixed has every activity completed but is stored as in-progress
	assert.Equal(t, 1, summary.InconsistentUnits)

	assert.Equal(t, "structure", summary.Activities[1].Activity)
	assert.Equal(t, 2, summary.Activities[1].Counts[models.UnitStatusCompleted])
	assert.Equal(t, 67, summary.Activities[1].CompletionPercent)
	assert.Equal(t, 100, summary.Activities[0].CompletionPercent)
}

func TestSummarizeUnits_Empty(t *testing.T) {
	summary := SummarizeUnits(nil)

	assert.Equal(t, 0, summary.AverageProgress)
	assert.Len(t, summary.Activities, 6)
	assert.Equal(t, 0, summary.Activities[0].CompletionPercent)
}
