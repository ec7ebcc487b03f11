package repository

import (
	"errors"

	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(clause.Associations).Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns every project, newest first
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC").Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update writes every column of the project guarded by its version.
func (r *GormProjectRepository) Update(project *models.Project, expectedVersion int) error {
	project.Version = expectedVersion + 1

	result := r.db.Model(project).
		Where("version = ?", expectedVersion).
		Select("*").
		Omit("ID", "CreatedAt", "CreatedBy", clause.Associations).
		Updates(project)
	if result.Error != nil {
		project.Version = expectedVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		project.Version = expectedVersion
		return ErrStaleVersion
	}
	return nil
}

// UpdateFields updates the given columns and bumps the version.
func (r *GormProjectRepository) UpdateFields(id string, expectedVersion int, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for column, value := range fields {
		updates[column] = value
	}
	updates["version"] = expectedVersion + 1

	result := r.db.Model(&models.Project{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleVersion
	}
	return nil
}

// Upsert inserts the project or overwrites the existing row, bumping its version.
func (r *GormProjectRepository) Upsert(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		err := tx.Select("id", "version", "created_at").Where("id = ?", project.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Omit(clause.Associations).Create(project).Error
		}
		if err != nil {
			return err
		}

		project.Version = existing.Version + 1
		project.CreatedAt = existing.CreatedAt
		return tx.Omit(clause.Associations).Save(project).Error
	})
}

// Delete deletes a project and all of its units in a transaction
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Unit{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
