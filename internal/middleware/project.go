package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/models"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
)

// ProjectLoader finds a project by ID
type ProjectLoader interface {
	GetProject(id string) (*models.Project, error)
}

// RequireProject loads the project named by the :id parameter into the context
func RequireProject(projects ProjectLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := projects.GetProject(c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrProjectNotFound) {
				apierrors.NotFound(c, "Project not found")
				return
			}
			apierrors.InternalError(c, "Failed to load project")
			return
		}

		c.Set(constants.ContextKeyProject, *project)
		c.Next()
	}
}

// GetProject retrieves the project loaded by RequireProject
func GetProject(c *gin.Context) (models.Project, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := value.(models.Project)
	return project, ok
}
