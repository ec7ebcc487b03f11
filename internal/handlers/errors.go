package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
	"github.com/yukikurage/portfolio-dashboard-api/internal/storage"
)

// respondServiceError maps service errors to HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, portfolio.ErrTooManyImages):
		apierrors.BadRequestWithDetails(c, apierrors.ErrCodeTooManyFiles, err.Error(), nil)
	case errors.Is(err, portfolio.ErrInvalid),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrInvalidExtension):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrUnitNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrVersionConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
