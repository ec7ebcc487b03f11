package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/middleware"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
)

// imagesFormField is the multipart field carrying project images
const imagesFormField = "images"

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the projects matching ?search= and ?status=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, filter))
}

// Stats returns the portfolio statistics over the filtered projects
func (h *ProjectHandler) Stats(c *gin.Context) {
	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	stats, err := h.projectService.Stats(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":   stats,
		"filters": filter,
	})
}

// GetProject returns a project loaded by RequireProject
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(project))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := services.CreateProjectInput{
		Title:                req.Title,
		Location:             req.Location,
		Status:               req.Status,
		Description:          req.Description,
		Manager:              req.Manager,
		StartDate:            req.StartDate,
		TargetCompletion:     req.TargetCompletion,
		CurrentPhase:         req.CurrentPhase,
		Budget:               req.Budget,
		Price:                req.Price,
		TargetMilestone:      req.TargetMilestone,
		TotalUnits:           req.TotalUnits,
		CompletedUnits:       req.CompletedUnits,
		Progress:             req.Progress,
		ActivitiesInProgress: req.ActivitiesInProgress,
		CompletedActivities:  req.CompletedActivities,
		Challenges:           req.Challenges,
		Amenities:            req.Amenities,
		WeeklyNotes:          req.WeeklyNotes,
		MonthlyNotes:         req.MonthlyNotes,
		AreaSqft:             req.AreaSqft,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.CreatedBy = &userID
	}

	project, err := h.projectService.CreateProject(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject updates a project. The request must carry the version it was read at.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("id"), services.UpdateProjectInput{
		Version:              req.Version,
		Title:                req.Title,
		Location:             req.Location,
		Description:          req.Description,
		Manager:              req.Manager,
		StartDate:            req.StartDate,
		TargetCompletion:     req.TargetCompletion,
		CurrentPhase:         req.CurrentPhase,
		Budget:               req.Budget,
		Price:                req.Price,
		TargetMilestone:      req.TargetMilestone,
		Status:               req.Status,
		TotalUnits:           req.TotalUnits,
		CompletedUnits:       req.CompletedUnits,
		Progress:             req.Progress,
		ActivitiesInProgress: req.ActivitiesInProgress,
		CompletedActivities:  req.CompletedActivities,
		Challenges:           req.Challenges,
		Amenities:            req.Amenities,
		Images:               req.Images,
		ProgressImages:       req.ProgressImages,
		WeeklyNotes:          req.WeeklyNotes,
		MonthlyNotes:         req.MonthlyNotes,
		AreaSqft:             req.AreaSqft,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// UpdateNotes updates the weekly and monthly notes of a project
func (h *ProjectHandler) UpdateNotes(c *gin.Context) {
	var req dto.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.projectService.UpdateNotes(c.Param("id"), services.UpdateNotesInput{
		Version:      req.Version,
		WeeklyNotes:  req.WeeklyNotes,
		MonthlyNotes: req.MonthlyNotes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project, its units and its stored images
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	result, err := h.projectService.DeleteProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UploadImages stores the multipart "images" files and attaches them to the project.
// Responds 207 when only some of the files were stored.
func (h *ProjectHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apierrors.BadRequest(c, "Invalid multipart form")
		return
	}

	headers := form.File[imagesFormField]
	files := make([]services.ImageFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, imageFile(fh))
	}

	result, err := h.projectService.UploadImages(c.Request.Context(), c.Param("id"), files)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	switch uploaded := result.Uploaded(); {
	case uploaded == 0:
		apierrors.BadRequestWithDetails(c, apierrors.ErrCodeInvalidInput, "No images were uploaded", result.Files)
	case uploaded < len(result.Files):
		c.JSON(http.StatusMultiStatus, gin.H{
			"error":   apierrors.NewAPIError(apierrors.ErrCodePartialFailure, "Some images failed to upload"),
			"project": dto.ToProjectDTO(*result.Project),
			"files":   result.Files,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"project": dto.ToProjectDTO(*result.Project),
			"files":   result.Files,
		})
	}
}

func imageFile(fh *multipart.FileHeader) services.ImageFile {
	return services.ImageFile{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// bindFilter reads the search and status query parameters, responding 400 on an unknown status
func bindFilter(c *gin.Context) (portfolio.Filter, bool) {
	status, err := portfolio.ParseStatusFilter(c.Query("status"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid status filter")
		return portfolio.Filter{}, false
	}

	return portfolio.Filter{
		Search: c.Query("search"),
		Status: status,
	}, true
}
