package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-dashboard-api/internal/middleware"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
)

// Services are the collaborators behind the API routes
type Services struct {
	Auth      *services.AuthService
	Projects  *services.ProjectService
	Units     *services.UnitService
	Reports   *services.ReportService
	Migration *services.MigrationService
}

// RegisterRoutes mounts the /api routes. Session middleware must already be installed.
func RegisterRoutes(r *gin.Engine, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	projectHandler := NewProjectHandler(svc.Projects)
	unitHandler := NewUnitHandler(svc.Units)
	reportHandler := NewReportHandler(svc.Reports)
	migrationHandler := NewMigrationHandler(svc.Migration)

	requireProject := middleware.RequireProject(svc.Projects)
	admin := []gin.HandlerFunc{middleware.RequireAuth(), middleware.RequireAdmin()}

	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		api.GET("/stats", projectHandler.Stats)

		// Project routes (reads public, writes admin only)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", requireProject, projectHandler.GetProject)
			projects.GET("/:id/units", requireProject, unitHandler.ListUnits)
			projects.GET("/:id/units/summary", requireProject, unitHandler.Summary)

			writes := projects.Group("", admin...)
			writes.POST("", projectHandler.CreateProject)
			writes.PUT("/:id", projectHandler.UpdateProject)
			writes.PATCH("/:id/notes", projectHandler.UpdateNotes)
			writes.DELETE("/:id", projectHandler.DeleteProject)
			writes.POST("/:id/images", projectHandler.UploadImages)
		}

		units := api.Group("/units")
		{
			units.GET("/:id", unitHandler.GetUnit)
			units.PATCH("/:id", append(admin, unitHandler.UpdateUnit)...)
		}

		api.POST("/reports", append(admin, reportHandler.GenerateReport)...)
		api.POST("/admin/migrate", append(admin, migrationHandler.Migrate)...)
	}
}
