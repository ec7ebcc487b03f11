package portfolio

import (
	"strings"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// Filter selects projects by a case-insensitive search term and a status.
type Filter struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

// ParseStatusFilter accepts "all", an empty value, or a canonical project status.
func ParseStatusFilter(value string) (string, error) {
	if value == "" || value == StatusAll {
		return StatusAll, nil
	}
	if !models.ProjectStatus(value).Valid() {
		return "", ErrInvalidStatus
	}
	return value, nil
}

// Matches reports whether the project's title or location contains the search term
// and its status equals the filter status.
func (f Filter) Matches(p models.Project) bool {
	term := strings.ToLower(f.Search)
	matchesSearch := strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Location), term)
	matchesStatus := f.Status == "" || f.Status == StatusAll || string(p.Status) == f.Status
	return matchesSearch && matchesStatus
}

// Apply returns the matching projects in their original order.
func (f Filter) Apply(projects []models.Project) []models.Project {
	result := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if f.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}
