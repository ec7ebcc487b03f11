package portfolio

import (
	"fmt"

	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

// ClampProgress bounds a progress value to [0,100].
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// ValidateProject clamps the project's progress and checks the rules applied on write.
// Stored rows are never re-validated on read.
func ValidateProject(p *models.Project) error {
	if !p.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}
	if p.TotalUnits < 0 || p.CompletedUnits < 0 {
		return ErrNegativeUnits
	}
	if p.CompletedUnits > p.TotalUnits {
		return ErrCompletedUnitsExceedTotal
	}

	p.Progress = ClampProgress(p.Progress)
	if p.Status == models.ProjectStatusCompleted && p.Progress != 100 {
		return ErrCompletedRequiresFull
	}
	if len(p.Images) > constants.MaxProjectImages {
		return ErrTooManyImages
	}
	return nil
}

// ValidateUnit clamps the unit's progress and checks the rules applied on write.
// The six activity statuses are validated individually and are not correlated with
// the overall status.
func ValidateUnit(u *models.Unit) error {
	if u.ProjectID == "" {
		return ErrMissingProjectReference
	}
	if !u.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, u.Status)
	}
	if !u.UnitType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidUnitType, u.UnitType)
	}

	if u.UnitType == models.UnitTypeInfrastructure {
		if u.SubType != nil && !u.SubType.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidSubType, *u.SubType)
		}
		if u.Bedrooms != nil {
			return ErrBedroomsOnInfra
		}
	} else if u.SubType != nil {
		return ErrSubTypeRequiresInfra
	}

	for _, activity := range u.Activities.Named() {
		if !activity.Status.Valid() {
			return fmt.Errorf("%w: %s=%q", ErrInvalidActivity, activity.Name, activity.Status)
		}
	}

	u.Progress = ClampProgress(u.Progress)
	if u.Status == models.UnitStatusCompleted && u.Progress != 100 {
		return ErrCompletedRequiresFull
	}
	if u.Status != models.UnitStatusCompleted && u.Progress == 100 {
		return ErrFullRequiresCompleted
	}
	return nil
}

// SuggestUnitStatus derives a status from the activity statuses. It is advisory and
// never overwrites a unit's stored status.
func SuggestUnitStatus(a models.Activities) models.UnitStatus {
	allCompleted := true
	for _, activity := range a.Named() {
		if activity.Status == models.UnitStatusBehindSchedule {
			return models.UnitStatusBehindSchedule
		}
		if activity.Status != models.UnitStatusCompleted {
			allCompleted = false
		}
	}
	if allCompleted {
		return models.UnitStatusCompleted
	}
	return models.UnitStatusInProgress
}

// ActivitySummary counts unit statuses for a single construction activity.
type ActivitySummary struct {
	Activity          string                    `json:"activity"`
	Counts            map[models.UnitStatus]int `json:"counts"`
	CompletionPercent int                       `json:"completion_percent"`
}

// UnitSummary is the aggregate unit-activity state of one project.
type UnitSummary struct {
	TotalUnits          int                       `json:"total_units"`
	StatusCounts        map[models.UnitStatus]int `json:"status_counts"`
	AverageProgress     int                       `json:"average_progress"`
	Activities          []ActivitySummary         `json:"activities"`
	InconsistentUnits   int                       `json:"inconsistent_units"`
	UnitsWithChallenges int                       `json:"units_with_challenges"`
}

// SummarizeUnits aggregates the units of a project. InconsistentUnits counts units
// whose stored status differs from SuggestUnitStatus.
func SummarizeUnits(units []models.Unit) UnitSummary {
	summary := UnitSummary{
		TotalUnits:   len(units),
		StatusCounts: newUnitStatusCounts(),
		Activities:   make([]ActivitySummary, len(models.ActivityNames)),
	}
	for i, name := range models.ActivityNames {
		summary.Activities[i] = ActivitySummary{Activity: name, Counts: newUnitStatusCounts()}
	}

	progressSum := 0
	for _, u := range units {
		if _, ok := summary.StatusCounts[u.Status]; ok {
			summary.StatusCounts[u.Status]++
		}
		progressSum += ClampProgress(u.Progress)
		for i, activity := range u.Activities.Named() {
			if _, ok := summary.Activities[i].Counts[activity.Status]; ok {
				summary.Activities[i].Counts[activity.Status]++
			}
		}
		if SuggestUnitStatus(u.Activities) != u.Status {
			summary.InconsistentUnits++
		}
		if len(u.Challenges) > 0 {
			summary.UnitsWithChallenges++
		}
	}

	summary.AverageProgress = roundedMean(progressSum, len(units))
	for i := range summary.Activities {
		completed := summary.Activities[i].Counts[models.UnitStatusCompleted]
		summary.Activities[i].CompletionPercent = percentage(completed, len(units))
	}

	return summary
}

func newUnitStatusCounts() map[models.UnitStatus]int {
	counts := make(map[models.UnitStatus]int, len(models.UnitStatuses))
	for _, status := range models.UnitStatuses {
		counts[status] = 0
	}
	return counts
}
