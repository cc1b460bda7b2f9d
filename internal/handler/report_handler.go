package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/service"
	"github.com/noah-isme/pta-api/pkg/response"
)

type reportService interface {
	Summarize(ctx context.Context, studentID string) (*models.StudentSummary, error)
	Export(ctx context.Context, studentID string, format models.ReportFormat) (*service.ReportFile, error)
}

// ReportHandler exposes student summaries.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(svc reportService) *ReportHandler {
	return &ReportHandler{service: svc}
}

// Summarize godoc
// @Summary Summary of a student's details, subjects and announcements
// @Tags Reports
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /summarize/student/{student_id} [get]
func (h *ReportHandler) Summarize(c *gin.Context) {
	summary, err := h.service.Summarize(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Export godoc
// @Summary Download a student summary
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param student_id path string true "Student ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Router /summarize/student/{student_id}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	format := models.ReportFormat(c.DefaultQuery("format", string(models.ReportFormatCSV)))
	file, err := h.service.Export(c.Request.Context(), c.Param("student_id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.ContentType, file.Filename, file.Data)
}
