package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Project{}, &models.Unit{}, &models.User{})
	require.NoError(t, err)

	return db
}

func newTestProject(id, title string) *models.Project {
	return &models.Project{
		ID:         id,
		Title:      title,
		Location:   "Abuja",
		Status:     models.ProjectStatusInProgress,
		TotalUnits: 10,
		Progress:   40,
	}
}

func newTestUnit(id, projectID, number string, unitType models.UnitType) models.Unit {
	return models.Unit{
		ID:         id,
		ProjectID:  projectID,
		UnitNumber: number,
		UnitType:   unitType,
		Status:     models.UnitStatusInProgress,
		Progress:   50,
		Activities: models.Activities{
			Foundation: models.UnitStatusCompleted,
			Structure:  models.UnitStatusInProgress,
			Roofing:    models.UnitStatusInProgress,
			MEP:        models.UnitStatusInProgress,
			Interior:   models.UnitStatusInProgress,
			Finishing:  models.UnitStatusInProgress,
		},
	}
}
