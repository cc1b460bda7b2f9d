package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/service"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
	"github.com/noah-isme/pta-api/pkg/response"
)

type studentDetailService interface {
	Record(ctx context.Context, req service.StudentDetailRequest) (*models.StudentDetail, error)
	Latest(ctx context.Context, studentID string) (*models.StudentDetail, error)
}

// StudentDetailHandler exposes attendance/marks endpoints.
type StudentDetailHandler struct {
	service studentDetailService
}

// NewStudentDetailHandler constructs the handler.
func NewStudentDetailHandler(svc studentDetailService) *StudentDetailHandler {
	return &StudentDetailHandler{service: svc}
}

// Record godoc
// @Summary Record attendance and marks for a student
// @Tags Student Details
// @Accept json
// @Produce json
// @Param payload body service.StudentDetailRequest true "Details payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /student/details [post]
func (h *StudentDetailHandler) Record(c *gin.Context) {
	var req service.StudentDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid student details payload"))
		return
	}

	detail, err := h.service.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, detail)
}

// Latest godoc
// @Summary Latest attendance and marks of a student
// @Description Responds 200 without data when nothing was recorded yet
// @Tags Student Details
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /student/details/{student_id} [get]
func (h *StudentDetailHandler) Latest(c *gin.Context) {
	detail, err := h.service.Latest(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if detail == nil {
		response.JSON(c, http.StatusOK, nil)
		return
	}
	response.JSON(c, http.StatusOK, detail)
}
