package repository

import (
	"errors"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
)

// ErrStaleVersion is returned when an update loses an optimistic concurrency check.
var ErrStaleVersion = errors.New("project repository: stale version")

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id string) (*models.Project, error)

	// List returns every project, newest first
	List() ([]models.Project, error)

	// Update writes the project if its stored version still equals expectedVersion
	Update(project *models.Project, expectedVersion int) error

	// UpdateFields updates the given columns if the stored version still equals expectedVersion
	UpdateFields(id string, expectedVersion int, fields map[string]interface{}) error

	// Upsert inserts the project or overwrites the row with the same ID
	Upsert(project *models.Project) error

	// Delete deletes a project and its units in a transaction
	Delete(id string) error
}

// UnitFilter holds filtering options for listing units
type UnitFilter struct {
	ProjectID string
	Status    *models.UnitStatus
	UnitType  *models.UnitType
	Page      int
	PageSize  int
}

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	// FindByID finds a unit by ID
	FindByID(id string) (*models.Unit, error)

	// List retrieves a project's units with filtering and pagination
	List(filter UnitFilter) ([]models.Unit, int64, error)

	// ListByProject returns all units of a project
	ListByProject(projectID string) ([]models.Unit, error)

	// CountByProject counts the units of a project
	CountByProject(projectID string) (int64, error)

	// Update updates a unit
	Update(unit *models.Unit) error

	// UpsertBatch inserts units or overwrites rows with the same ID
	UpsertBatch(units []models.Unit) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}
