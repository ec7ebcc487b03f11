package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/middleware"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
	"github.com/yukikurage/portfolio-dashboard-api/internal/utils"
)

type UnitHandler struct {
	unitService *services.UnitService
}

func NewUnitHandler(unitService *services.UnitService) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
	}
}

// ListUnits returns the units of the project loaded by RequireProject
// Can filter by status and type
func (h *UnitHandler) ListUnits(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	input := services.ListUnitsInput{ProjectID: project.ID}

	if value := c.Query("status"); value != "" {
		status := models.UnitStatus(value)
		if !status.Valid() {
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
		input.Status = &status
	}
	if value := c.Query("type"); value != "" {
		unitType := models.UnitType(value)
		if !unitType.Valid() {
			apierrors.BadRequest(c, "Invalid type filter")
			return
		}
		input.UnitType = &unitType
	}

	params := utils.GetPaginationParams(c)
	input.Page = params.Page
	input.PageSize = params.Limit

	units, total, err := h.unitService.ListUnits(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitListResponse(units, params.Page, params.Limit, total))
}

// Summary returns the aggregated unit activity state of a project
func (h *UnitHandler) Summary(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	summary, err := h.unitService.Summary(project.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetUnit returns a unit by ID
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unit, err := h.unitService.GetUnit(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitDTO(*unit))
}

// UpdateUnit applies a partial update to a unit
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := services.UpdateUnitInput{
		Status:           req.Status,
		Progress:         req.Progress,
		TargetCompletion: req.TargetCompletion,
		CurrentPhase:     req.CurrentPhase,
		Challenges:       req.Challenges,
		Photos:           req.Photos,
	}
	if a := req.Activities; a != nil {
		input.Activities = &services.ActivitiesInput{
			Foundation: a.Foundation,
			Structure:  a.Structure,
			Roofing:    a.Roofing,
			MEP:        a.MEP,
			Interior:   a.Interior,
			Finishing:  a.Finishing,
		}
	}

	unit, err := h.unitService.UpdateUnit(c.Param("id"), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUnitDTO(*unit))
}
