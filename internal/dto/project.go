package dto

import (
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
)

// CreateProjectRequest is the body of POST /api/projects
type CreateProjectRequest struct {
	Title                string               `json:"title" binding:"required"`
	Location             string               `json:"location" binding:"required"`
	Status               models.ProjectStatus `json:"status" binding:"required"`
	Description          *string              `json:"description"`
	Manager              string               `json:"manager"`
	StartDate            string               `json:"start_date"`
	TargetCompletion     string               `json:"target_completion"`
	CurrentPhase         string               `json:"current_phase"`
	Budget               string               `json:"budget"`
	Price                *float64             `json:"price"`
	TargetMilestone      string               `json:"target_milestone"`
	TotalUnits           int                  `json:"total_units"`
	CompletedUnits       int                  `json:"completed_units"`
	Progress             int                  `json:"progress"`
	ActivitiesInProgress []string             `json:"activities_in_progress"`
	CompletedActivities  []string             `json:"completed_activities"`
	Challenges           []string             `json:"challenges"`
	Amenities            []string             `json:"amenities"`
	WeeklyNotes          string               `json:"weekly_notes"`
	MonthlyNotes         string               `json:"monthly_notes"`
	AreaSqft             *int                 `json:"area_sqft"`
	Bedrooms             *int                 `json:"bedrooms"`
	Bathrooms            *int                 `json:"bathrooms"`
}

// UpdateProjectRequest is the body of PUT /api/projects/:id. Omitted fields are unchanged.
type UpdateProjectRequest struct {
	Version              int                   `json:"version" binding:"required,min=1"`
	Title                *string               `json:"title"`
	Location             *string               `json:"location"`
	Status               *models.ProjectStatus `json:"status"`
	Description          *string               `json:"description"`
	Manager              *string               `json:"manager"`
	StartDate            *string               `json:"start_date"`
	TargetCompletion     *string               `json:"target_completion"`
	CurrentPhase         *string               `json:"current_phase"`
	Budget               *string               `json:"budget"`
	Price                *float64              `json:"price"`
	TargetMilestone      *string               `json:"target_milestone"`
	TotalUnits           *int                  `json:"total_units"`
	CompletedUnits       *int                  `json:"completed_units"`
	Progress             *int                  `json:"progress"`
	ActivitiesInProgress *[]string             `json:"activities_in_progress"`
	CompletedActivities  *[]string             `json:"completed_activities"`
	Challenges           *[]string             `json:"challenges"`
	Amenities            *[]string             `json:"amenities"`
	Images               *[]string             `json:"images"`
	ProgressImages       *[]string             `json:"progress_images"`
	WeeklyNotes          *string               `json:"weekly_notes"`
	MonthlyNotes         *string               `json:"monthly_notes"`
	AreaSqft             *int                  `json:"area_sqft"`
	Bedrooms             *int                  `json:"bedrooms"`
	Bathrooms            *int                  `json:"bathrooms"`
}

// UpdateNotesRequest is the body of PATCH /api/projects/:id/notes
type UpdateNotesRequest struct {
	Version      int     `json:"version" binding:"required,min=1"`
	WeeklyNotes  *string `json:"weekly_notes"`
	MonthlyNotes *string `json:"monthly_notes"`
}

// ProjectDTO is a project with its display attributes
type ProjectDTO struct {
	models.Project
	StatusColor    string `json:"status_color"`
	FormattedPrice string `json:"formatted_price,omitempty"`
}

// ProjectListItemDTO represents a project in list responses (minimal data)
type ProjectListItemDTO struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Location         string               `json:"location"`
	Status           models.ProjectStatus `json:"status"`
	StatusColor      string               `json:"status_color"`
	Progress         int                  `json:"progress"`
	TotalUnits       int                  `json:"total_units"`
	CompletedUnits   int                  `json:"completed_units"`
	Manager          string               `json:"manager"`
	TargetCompletion string               `json:"target_completion"`
	CurrentPhase     string               `json:"current_phase"`
	Budget           string               `json:"budget"`
	Price            *float64             `json:"price"`
	FormattedPrice   string               `json:"formatted_price,omitempty"`
	Image            string               `json:"image,omitempty"`
	Version          int                  `json:"version"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// ProjectListResponse represents a filtered list of projects
type ProjectListResponse struct {
	Projects []ProjectListItemDTO `json:"projects"`
	Total    int                  `json:"total"`
	Filters  portfolio.Filter     `json:"filters"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		Project:        project,
		StatusColor:    project.Status.Color(),
		FormattedPrice: formattedPrice(project.Price),
	}
}

// ToProjectListItemDTO converts a Project model to ProjectListItemDTO
func ToProjectListItemDTO(project models.Project) ProjectListItemDTO {
	dto := ProjectListItemDTO{
		ID:               project.ID,
		Title:            project.Title,
		Location:         project.Location,
		Status:           project.Status,
		StatusColor:      project.Status.Color(),
		Progress:         project.Progress,
		TotalUnits:       project.TotalUnits,
		CompletedUnits:   project.CompletedUnits,
		Manager:          project.Manager,
		TargetCompletion: project.TargetCompletion,
		CurrentPhase:     project.CurrentPhase,
		Budget:           project.Budget,
		Price:            project.Price,
		FormattedPrice:   formattedPrice(project.Price),
		Version:          project.Version,
		UpdatedAt:        project.UpdatedAt,
	}

	// First image is the cover
	if len(project.Images) > 0 {
		dto.Image = project.Images[0]
	}

	return dto
}

// ToProjectListResponse converts a slice of projects to ProjectListResponse
func ToProjectListResponse(projects []models.Project, filter portfolio.Filter) ProjectListResponse {
	items := make([]ProjectListItemDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectListItemDTO(project)
	}

	return ProjectListResponse{
		Projects: items,
		Total:    len(items),
		Filters:  filter,
	}
}

func formattedPrice(price *float64) string {
	if price == nil {
		return ""
	}
	return portfolio.FormatPrice(*price)
}
