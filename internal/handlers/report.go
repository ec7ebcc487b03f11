package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
	"github.com/yukikurage/portfolio-dashboard-api/internal/dto"
	apierrors "github.com/yukikurage/portfolio-dashboard-api/internal/errors"
	"github.com/yukikurage/portfolio-dashboard-api/internal/portfolio"
	"github.com/yukikurage/portfolio-dashboard-api/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReport builds a report and returns it as a JSON file download
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, err := portfolio.ParseStatusFilter(req.Filters.Status)
	if err != nil {
		apierrors.BadRequest(c, "Invalid status filter")
		return
	}
	req.Filters.Status = status

	generated, err := h.reportService.Generate(c.Request.Context(), services.GenerateReportInput{
		Request:          req.ToReportRequest(),
		IncludeNarrative: req.IncludeNarrative,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", generated.FileName))
	c.Data(http.StatusOK, constants.ReportContentType, generated.Content)
}
