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

type announcementService interface {
	Post(ctx context.Context, req service.PostAnnouncementRequest) (*models.AnnouncementDetail, error)
	ListForStudent(ctx context.Context, studentID string) ([]models.AnnouncementDetail, bool, error)
	ListForTeacher(ctx context.Context, teacherID string) ([]models.AnnouncementDetail, error)
}

// AnnouncementHandler exposes announcement endpoints.
type AnnouncementHandler struct {
	service announcementService
}

// NewAnnouncementHandler constructs the handler.
func NewAnnouncementHandler(svc announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: svc}
}

// Post godoc
// @Summary Post an announcement to a subject
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body service.PostAnnouncementRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Post(c *gin.Context) {
	var req service.PostAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid announcement payload"))
		return
	}
	if !ensureActor(c, req.TeacherID) {
		return
	}

	announcement, err := h.service.Post(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, announcement)
}

// ListForStudent godoc
// @Summary Announcements visible to a student, newest first
// @Tags Announcements
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /announcements/{student_id} [get]
func (h *AnnouncementHandler) ListForStudent(c *gin.Context) {
	items, hit, err := h.service.ListForStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, http.StatusOK, items, hit)
}

// ListForTeacher godoc
// @Summary Announcements authored by a teacher, newest first
// @Tags Announcements
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teacher/announcements/{teacher_id} [get]
func (h *AnnouncementHandler) ListForTeacher(c *gin.Context) {
	items, err := h.service.ListForTeacher(c.Request.Context(), c.Param("teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}
