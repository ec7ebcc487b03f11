package dto

import (
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
)

// ActivitiesRequest holds activity status changes
type ActivitiesRequest struct {
	Foundation *models.UnitStatus `json:"foundation"`
	Structure  *models.UnitStatus `json:"structure"`
	Roofing    *models.UnitStatus `json:"roofing"`
	MEP        *models.UnitStatus `json:"mep"`
	Interior   *models.UnitStatus `json:"interior"`
	Finishing  *models.UnitStatus `json:"finishing"`
}

// UpdateUnitRequest is the body of PATCH /api/units/:id. Omitted fields are unchanged.
type UpdateUnitRequest struct {
	Status           *models.UnitStatus `json:"status"`
	Progress         *int               `json:"progress"`
	TargetCompletion *string            `json:"target_completion"`
	CurrentPhase     *string            `json:"current_phase"`
	Activities       *ActivitiesRequest `json:"activities"`
	Challenges       *[]string          `json:"challenges"`
	Photos           *[]string          `json:"photos"`
}

// UnitDTO is a unit with its display attributes and the advisory status
type UnitDTO struct {
	models.Unit
	StatusColor     string            `json:"status_color"`
	SuggestedStatus models.UnitStatus `json:"suggested_status"`
}

// UnitListResponse represents a paginated list of units
type UnitListResponse struct {
	Units      []UnitDTO `json:"units"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// ToUnitDTO converts a Unit model to UnitDTO
func ToUnitDTO(unit models.Unit) UnitDTO {
	return UnitDTO{
		Unit:            unit,
		StatusColor:     unit.Status.Color(),
		SuggestedStatus: portfolio.SuggestUnitStatus(unit.Activities),
	}
}

// ToUnitListResponse converts a slice of units to UnitListResponse
func ToUnitListResponse(units []models.Unit, page, pageSize int, totalCount int64) UnitListResponse {
	items := make([]UnitDTO, len(units))
	for i, unit := range units {
		items[i] = ToUnitDTO(unit)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return UnitListResponse{
		Units:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
