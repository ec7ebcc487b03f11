package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "amazon", Title: "AMAZON", Location: "Gwarinpa District, Abuja", Status: models.ProjectStatusInProgress},
		{ID: "bali", Title: "BALI", Location: "Asokoro District, Abuja", Status: models.ProjectStatusInProgress},
		{ID: "capri", Title: "CAPRI", Location: "Wuye District, Abuja", Status: models.ProjectStatusCompleted},
	}
}

func ids(projects []models.Project) []string {
	result := make([]string, len(projects))
	for i, p := range projects {
		result[i] = p.ID
	}
	return result
}

func TestFilter_EmptyIsIdentity(t *testing.T) {
	projects := sampleProjects()

	result := Filter{Search: "", Status: StatusAll}.Apply(projects)

	assert.Equal(t, projects, result)
}

func TestFilter_SearchTitle(t *testing.T) {
	result := Filter{Search: "amaz", Status: StatusAll}.Apply(sampleProjects())

	assert.Equal(t, []string{"amazon"}, ids(result))
}

func TestFilter_SearchLocation(t *testing.T) {
	result := Filter{Search: "abuja", Status: StatusAll}.Apply(sampleProjects())

	assert.Equal(t, []string{"amazon", "bali", "capri"}, ids(result))
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	result := Filter{Search: "ASOKORO", Status: StatusAll}.Apply(sampleProjects())

	assert.Equal(t, []string{"bali"}, ids(result))
}

func TestFilter_Status(t *testing.T) {
	result := Filter{Status: string(models.ProjectStatusCompleted)}.Apply(sampleProjects())

	assert.Equal(t, []string{"capri"}, ids(result))
}

func TestFilter_SearchAndStatus(t *testing.T) {
	result := Filter{Search: "district", Status: string(models.ProjectStatusInProgress)}.Apply(sampleProjects())

	assert.Equal(t, []string{"amazon", "bali"}, ids(result))
}

func TestFilter_NoMatch(t *testing.T) {
	result := Filter{Search: "lagos"}.Apply(sampleProjects())

	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestParseStatusFilter(t *testing.T) {
	status, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, StatusAll, status)

	status, err = ParseStatusFilter("Near Completion")
	require.NoError(t, err)
	assert.Equal(t, "Near Completion", status)

	_, err = ParseStatusFilter("near-completion")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorIs(t, err, ErrInvalid)
}
