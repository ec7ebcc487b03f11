package repository

import (
	"github.com/yukikurage/portfolio-dashboard-api/internal/database"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const unitBatchSize = 100

// GormUnitRepository is a GORM implementation of UnitRepository
type GormUnitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new UnitRepository
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by ID
func (r *GormUnitRepository) FindByID(id string) (*models.Unit, error) {
	var unit models.Unit
	if err := r.db.Where("id = ?", id).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

// List retrieves a project's units with filtering and pagination.
// Residential units come before infrastructure, each ordered by unit number.
func (r *GormUnitRepository) List(filter UnitFilter) ([]models.Unit, int64, error) {
	var units []models.Unit

	query := r.db.Model(&models.Unit{}).Where("units.project_id = ?", filter.ProjectID)

	if filter.Status != nil {
		query = query.Where("units.status = ?", *filter.Status)
	}
	if filter.UnitType != nil {
		query = query.Where("units.unit_type = ?", *filter.UnitType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := r.ordered(query)
	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Find(&units).Error; err != nil {
		return nil, 0, err
	}

	return units, total, nil
}

// ListByProject returns all units of a project
func (r *GormUnitRepository) ListByProject(projectID string) ([]models.Unit, error) {
	var units []models.Unit
	if err := r.ordered(r.db.Where("project_id = ?", projectID)).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// CountByProject counts the units of a project
func (r *GormUnitRepository) CountByProject(projectID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Unit{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// Update updates a unit
func (r *GormUnitRepository) Update(unit *models.Unit) error {
	return r.db.Save(unit).Error
}

// UpsertBatch inserts units or overwrites rows with the same ID
func (r *GormUnitRepository) UpsertBatch(units []models.Unit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(&units, unitBatchSize).Error
}

func (r *GormUnitRepository) ordered(query *gorm.DB) *gorm.DB {
	return query.Order("CASE WHEN unit_type = 'Infrastructure' THEN 1 ELSE 0 END, unit_number ASC")
}
