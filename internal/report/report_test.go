package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
)

var fixedNow = time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	return &Builder{Prefix: "bilaad", Now: func() time.Time { return fixedNow }}
}

func price(v float64) *float64 { return &v }

func testProjects() []models.Project {
	return []models.Project{
		{ID: "amazon", Title: "AMAZON", Location: "Gwarinpa, Abuja", Status: models.ProjectStatusInProgress, Progress: 75, TotalUnits: 26, CompletedUnits: 18, Price: price(2.5e9)},
		{ID: "capri", Title: "CAPRI", Location: "Katampe, Abuja", Status: models.ProjectStatusCompleted, Progress: 100, TotalUnits: 195, CompletedUnits: 195, Price: price(18.5e9)},
		{ID: "barbados", Title: "BARBADOS", Location: "Lokogoma, Abuja", Status: models.ProjectStatusPlanning, Progress: 15, TotalUnits: 36},
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"weekly", Request{Type: TypeWeekly}, nil},
		{"comprehensive", Request{Type: TypeComprehensive}, nil},
		{"unknown type", Request{Type: "daily"}, ErrInvalidType},
		{"custom without category", Request{Type: TypeCustom, DateRange: "ytd"}, ErrMissingCategory},
		{"custom bad category", Request{Type: TypeCustom, Category: "hr", DateRange: "ytd"}, ErrInvalidCategory},
		{"custom without range", Request{Type: TypeCustom, Category: "financial"}, ErrMissingDateRange},
		{"custom bad range", Request{Type: TypeCustom, Category: "financial", DateRange: "forever"}, ErrInvalidDateRange},
		{"custom", Request{Type: TypeCustom, Category: "financial", DateRange: "last-quarter"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, portfolio.ErrInvalid)
		})
	}
}

func TestBuild_Comprehensive(t *testing.T) {
	doc, err := newTestBuilder().Build(Request{Type: TypeComprehensive}, testProjects())
	require.NoError(t, err)

	assert.Equal(t, fixedNow, doc.Generated)
	assert.Equal(t, 3, doc.ProjectCount)
	assert.Equal(t, portfolio.StatusAll, doc.Filters.Status)
	require.NotNil(t, doc.Summary)
	assert.Equal(t, 3, doc.Summary.TotalProjects)
	assert.Equal(t, 257, doc.Summary.TotalUnits)
	assert.Equal(t, 63, doc.Summary.AvgProgress)
	assert.InDelta(t, 21e9, doc.Summary.TotalValue, 1)
	assert.Equal(t, 1, doc.Summary.StatusCounts[models.ProjectStatusCompleted])
	assert.Equal(t, 0, doc.Summary.StatusCounts[models.ProjectStatusNearCompletion])
}

func TestBuild_WeeklyHasNoSummary(t *testing.T) {
	doc, err := newTestBuilder().Build(Request{Type: TypeWeekly}, testProjects())
	require.NoError(t, err)

	assert.Nil(t, doc.Summary)
	assert.Len(t, doc.Projects, 3)
}

func TestBuild_AppliesFilter(t *testing.T) {
	req := Request{
		Type:      TypeCustom,
		Category:  "progress",
		DateRange: "last-month",
		Notes:     "Board review",
		Filter:    portfolio.Filter{Search: "abuja", Status: string(models.ProjectStatusInProgress)},
	}

	doc, err := newTestBuilder().Build(req, testProjects())
	require.NoError(t, err)

	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "amazon", doc.Projects[0].ID)
	assert.Equal(t, 1, doc.ProjectCount)
	assert.Equal(t, "Board review", doc.Notes)
}

func TestBuild_EmptyProjects(t *testing.T) {
	doc, err := newTestBuilder().Build(Request{Type: TypeComprehensive}, nil)
	require.NoError(t, err)

	assert.NotNil(t, doc.Projects)
	assert.Equal(t, 0, doc.Summary.AvgProgress)
	assert.Len(t, doc.Summary.StatusCounts, 4)
}

func TestBuild_InvalidRequest(t *testing.T) {
	_, err := newTestBuilder().Build(Request{Type: TypeCustom}, testProjects())
	assert.ErrorIs(t, err, ErrMissingCategory)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "bilaad-weekly-report-2024-06-01.json", FileName("bilaad", TypeWeekly, "", fixedNow))
	assert.Equal(t, "bilaad-comprehensive-report-2024-06-01.json", FileName("bilaad", TypeComprehensive, "", fixedNow))
	assert.Equal(t, "acme-custom-financial-report-2024-06-01.json", FileName("acme", TypeCustom, "financial", fixedNow))

	lagos := time.FixedZone("WAT", 60*60)
	assert.Equal(t, "bilaad-monthly-report-2024-06-01.json", FileName("bilaad", TypeMonthly, "", fixedNow.In(lagos)))
}

func TestEncode(t *testing.T) {
	b := newTestBuilder()
	doc, err := b.Build(Request{Type: TypeComprehensive}, testProjects())
	require.NoError(t, err)

	data, err := Encode(doc)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "comprehensive", decoded["type"])
	assert.Equal(t, "2024-06-01T23:30:00Z", decoded["generated"])
	assert.EqualValues(t, 3, decoded["projectCount"])
	assert.Contains(t, decoded, "summary")
	assert.NotContains(t, decoded, "category")
	assert.Contains(t, string(data), "\n  \"type\"")

	assert.Equal(t, "bilaad-comprehensive-report-2024-06-01.json", b.FileName(doc))

	_, err = Encode(nil)
	assert.Error(t, err)
}
