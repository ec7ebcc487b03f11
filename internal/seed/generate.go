package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	regularTypes = []string{"Villa", "Townhouse", "Apartment"}
	luxuryTypes  = []string{"Luxury Villa"}
	unitStatuses = []string{"behind-schedule", "in-progress", "completed"}
	phases       = []string{"Foundation", "Structure", "Roofing", "MEP", "Interior", "Finishing"}
	lateReasons  = []string{"Material delivery delays", "Weather impact"}
)

// ExpandUnits fills Units for every project that has a GenerateSpec and no explicit units.
// The same rng seed and clock always produce the same units.
func (d *Dataset) ExpandUnits(rng *rand.Rand, now time.Time) {
	for i := range d.Projects {
		p := &d.Projects[i]
		if len(p.Units) == 0 && p.Generate != nil {
			p.Units = GenerateUnits(p.ID, *p.Generate, rng, now)
		}
	}
}

// GenerateUnits synthesizes residential and infrastructure units for a project.
// Completed units are at 100%, in-progress units at 20-99% and late units at 0-29%.
func GenerateUnits(projectID string, spec GenerateSpec, rng *rand.Rand, now time.Time) []Unit {
	types := regularTypes
	if spec.Luxury {
		types = luxuryTypes
	}
	prefix := strings.ToUpper(projectID)

	units := make([]Unit, 0, spec.Residential+len(spec.Infrastructure))
	for i := 1; i <= spec.Residential; i++ {
		bedrooms := rng.IntN(4) + 2
		u := randomUnit(rng, now)
		u.ID = fmt.Sprintf("%s-unit-%d", projectID, i)
		u.UnitNumber = fmt.Sprintf("%s-RES-%03d", prefix, i)
		u.Type = types[rng.IntN(len(types))]
		u.Bedrooms = &bedrooms
		units = append(units, u)
	}

	for i, infra := range spec.Infrastructure {
		u := randomUnit(rng, now)
		u.ID = fmt.Sprintf("%s-infra-%d", projectID, i+1)
		u.UnitNumber = fmt.Sprintf("%s-INF-%03d", prefix, i+1)
		u.Type = "Infrastructure"
		u.SubType = infra
		units = append(units, u)
	}

	return units
}

func randomUnit(rng *rand.Rand, now time.Time) Unit {
	status := unitStatuses[rng.IntN(len(unitStatuses))]

	var progress int
	switch status {
	case "completed":
		progress = 100
	case "in-progress":
		progress = rng.IntN(80) + 20
	default:
		progress = rng.IntN(30)
	}

	var challenges []string
	if status == "behind-schedule" {
		challenges = append(challenges, lateReasons...)
	}

	target := now.Add(time.Duration(rng.Float64() * float64(365*24*time.Hour)))

	return Unit{
		Status:           status,
		Progress:         progress,
		TargetCompletion: target.Format("2006-01-02"),
		CurrentPhase:     phases[rng.IntN(len(phases))],
		Activities: Activities{
			Foundation: randomActivity(rng, 0.3),
			Structure:  randomActivity(rng, 0.4),
			Roofing:    randomActivity(rng, 0.5),
			MEP:        randomActivity(rng, 0.6),
			Interior:   randomActivity(rng, 0.7),
			Finishing:  randomActivity(rng, 0.8),
		},
		Challenges:  challenges,
		Photos:      []string{},
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
}

// randomActivity is behind schedule 20% of the time; otherwise completed when a second
// draw exceeds completedAbove.
func randomActivity(rng *rand.Rand, completedAbove float64) string {
	if rng.Float64() > 0.8 {
		return "behind-schedule"
	}
	if rng.Float64() > completedAbove {
		return "completed"
	}
	return "in-progress"
}
