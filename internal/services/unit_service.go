package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/repository"
	"gorm.io/gorm"
)

var ErrUnitNotFound = errors.New("unit not found")

// UnitService handles unit business logic
type UnitService struct {
	unitRepo repository.UnitRepository
	now      func() time.Time
}

// NewUnitService creates a new UnitService
func NewUnitService(unitRepo repository.UnitRepository) *UnitService {
	return &UnitService{
		unitRepo: unitRepo,
		now:      time.Now,
	}
}

// ListUnitsInput represents filters for listing units
type ListUnitsInput struct {
	ProjectID string
	Status    *models.UnitStatus
	UnitType  *models.UnitType
	Page      int
	PageSize  int
}

// ActivitiesInput holds activity status changes. Nil fields are left unchanged.
type ActivitiesInput struct {
	Foundation *models.UnitStatus
	Structure  *models.UnitStatus
	Roofing    *models.UnitStatus
	MEP        *models.UnitStatus
	Interior   *models.UnitStatus
	Finishing  *models.UnitStatus
}

// UpdateUnitInput represents input for updating a unit. Nil fields are left unchanged.
type UpdateUnitInput struct {
	Status           *models.UnitStatus
	Progress         *int
	TargetCompletion *string
	CurrentPhase     *string
	Activities       *ActivitiesInput
	Challenges       *[]string
	Photos           *[]string
}

// ListUnits lists a project's units with filtering and pagination
func (s *UnitService) ListUnits(input ListUnitsInput) ([]models.Unit, int64, error) {
	units, total, err := s.unitRepo.List(repository.UnitFilter{
		ProjectID: input.ProjectID,
		Status:    input.Status,
		UnitType:  input.UnitType,
		Page:      input.Page,
		PageSize:  input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list units: %w", err)
	}
	return units, total, nil
}

// GetUnit retrieves a unit by ID
func (s *UnitService) GetUnit(id string) (*models.Unit, error) {
	unit, err := s.unitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}
	return unit, nil
}

// UpdateUnit applies the input, validates the whole unit and stamps last_updated.
// The overall status is never derived from the activities.
func (s *UnitService) UpdateUnit(id string, input UpdateUnitInput) (*models.Unit, error) {
	unit, err := s.GetUnit(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		unit.Status = *input.Status
	}
	if input.Progress != nil {
		unit.Progress = *input.Progress
	}
	if input.TargetCompletion != nil {
		unit.TargetCompletion = *input.TargetCompletion
	}
	if input.CurrentPhase != nil {
		unit.CurrentPhase = *input.CurrentPhase
	}
	if a := input.Activities; a != nil {
		setStatus(&unit.Activities.Foundation, a.Foundation)
		setStatus(&unit.Activities.Structure, a.Structure)
		setStatus(&unit.Activities.Roofing, a.Roofing)
		setStatus(&unit.Activities.MEP, a.MEP)
		setStatus(&unit.Activities.Interior, a.Interior)
		setStatus(&unit.Activities.Finishing, a.Finishing)
	}
	if input.Challenges != nil {
		unit.Challenges = jsonList(*input.Challenges)
	}
	if input.Photos != nil {
		unit.Photos = jsonList(*input.Photos)
	}

	if err := portfolio.ValidateUnit(unit); err != nil {
		return nil, err
	}

	unit.LastUpdated = s.now().UTC()
	if err := s.unitRepo.Update(unit); err != nil {
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}
	return unit, nil
}

// Summary aggregates the unit activity state of a project
func (s *UnitService) Summary(projectID string) (portfolio.UnitSummary, error) {
	units, err := s.unitRepo.ListByProject(projectID)
	if err != nil {
		return portfolio.UnitSummary{}, fmt.Errorf("failed to list units: %w", err)
	}
	return portfolio.SummarizeUnits(units), nil
}

func setStatus(dst *models.UnitStatus, value *models.UnitStatus) {
	if value != nil {
		*dst = *value
	}
}
