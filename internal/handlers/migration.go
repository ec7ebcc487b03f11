package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
)

type MigrationHandler struct {
	migrationService *services.MigrationService
}

func NewMigrationHandler(migrationService *services.MigrationService) *MigrationHandler {
	return &MigrationHandler{
		migrationService: migrationService,
	}
}

// Migrate loads the seed dataset into the database.
// Responds 207 with the per-project outcomes when any project failed.
func (h *MigrationHandler) Migrate(c *gin.Context) {
	result, err := h.migrationService.Run(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, "Failed to load seed dataset")
		return
	}

	status := http.StatusOK
	if result.Failed() > 0 {
		status = http.StatusMultiStatus
	}

	c.JSON(status, gin.H{
		"succeeded": result.Succeeded(),
		"failed":    result.Failed(),
		"items":     result.Items,
	})
}
