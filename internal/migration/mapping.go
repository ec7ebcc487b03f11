// Package migration moves the seed dataset into the canonical project and unit tables.
package migration

import (
	"fmt"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/seed"
	"gorm.io/datatypes"
)

// Defaults applied to every migrated project; the seed has no per-project values for them.
const (
	defaultAreaSqft  = 5000
	defaultBedrooms  = 3
	defaultBathrooms = 2
)

var seedStatuses = []struct {
	seed      string
	canonical models.ProjectStatus
}{
	{"planning", models.ProjectStatusPlanning},
	{"in-progress", models.ProjectStatusInProgress},
	{"near-completion", models.ProjectStatusNearCompletion},
	{"completed", models.ProjectStatusCompleted},
}

// ProjectStatusFromSeed translates a seed status. Unknown values map to Planning.
func ProjectStatusFromSeed(status string) models.ProjectStatus {
	for _, s := range seedStatuses {
		if s.seed == status {
			return s.canonical
		}
	}
	return models.ProjectStatusPlanning
}

// SeedStatusFromProject is the inverse of ProjectStatusFromSeed.
func SeedStatusFromProject(status models.ProjectStatus) string {
	for _, s := range seedStatuses {
		if s.canonical == status {
			return s.seed
		}
	}
	return "planning"
}

// ToProject converts a seed project into a canonical project row.
func ToProject(p seed.Project) models.Project {
	description := fmt.Sprintf("%s Estate Development Project", p.Name)
	price := portfolio.ExtractPrice(p.Budget)
	area, bedrooms, bathrooms := defaultAreaSqft, defaultBedrooms, defaultBathrooms

	return models.Project{
		ID:                   p.ID,
		Title:                p.Name,
		Location:             p.Location,
		Description:          &description,
		Manager:              p.Manager,
		StartDate:            p.StartDate,
		TargetCompletion:     p.TargetCompletion,
		CurrentPhase:         p.CurrentPhase,
		Budget:               p.Budget,
		Price:                &price,
		TargetMilestone:      p.TargetMilestone,
		Status:               ProjectStatusFromSeed(p.Status),
		TotalUnits:           p.TotalUnits,
		CompletedUnits:       p.CompletedUnits,
		Progress:             p.Progress,
		ActivitiesInProgress: stringList(p.ActivitiesInProgress),
		CompletedActivities:  stringList(p.CompletedActivities),
		Challenges:           stringList(p.Challenges),
		Amenities:            datatypes.JSONSlice[string]{},
		Images:               datatypes.JSONSlice[string]{},
		ProgressImages:       stringList(p.ProgressImages),
		WeeklyNotes:          p.WeeklyNotes,
		MonthlyNotes:         p.MonthlyNotes,
		AreaSqft:             &area,
		Bedrooms:             &bedrooms,
		Bathrooms:            &bathrooms,
	}
}

// ToUnits converts the seed units of a project. Unit statuses share the seed vocabulary
// and are copied as is. A missing or unparseable lastUpdated falls back to now.
func ToUnits(p seed.Project, now time.Time) []models.Unit {
	units := make([]models.Unit, 0, len(p.Units))
	for _, u := range p.Units {
		unit := models.Unit{
			ID:               u.ID,
			ProjectID:        p.ID,
			UnitNumber:       u.UnitNumber,
			UnitType:         models.UnitType(u.Type),
			Bedrooms:         u.Bedrooms,
			Status:           models.UnitStatus(u.Status),
			Progress:         u.Progress,
			TargetCompletion: u.TargetCompletion,
			CurrentPhase:     u.CurrentPhase,
			Activities: models.Activities{
				Foundation: models.UnitStatus(u.Activities.Foundation),
				Structure:  models.UnitStatus(u.Activities.Structure),
				Roofing:    models.UnitStatus(u.Activities.Roofing),
				MEP:        models.UnitStatus(u.Activities.MEP),
				Interior:   models.UnitStatus(u.Activities.Interior),
				Finishing:  models.UnitStatus(u.Activities.Finishing),
			},
			Challenges:  stringList(u.Challenges),
			Photos:      stringList(u.Photos),
			LastUpdated: parseTimestamp(u.LastUpdated, now),
		}
		if u.SubType != "" {
			subType := models.InfrastructureType(u.SubType)
			unit.SubType = &subType
		}
		units = append(units, unit)
	}
	return units
}

func parseTimestamp(value string, fallback time.Time) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return fallback.UTC()
}

func stringList(values []string) datatypes.JSONSlice[string] {
	if values == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](values)
}
