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

type subjectService interface {
	Create(ctx context.Context, req service.CreateSubjectRequest) (*models.Subject, error)
	Enroll(ctx context.Context, req service.EnrollmentRequest) (*models.Enrollment, error)
	Unenroll(ctx context.Context, req service.EnrollmentRequest) error
	ListForTeacher(ctx context.Context, teacherID string) ([]models.Subject, error)
	ListForStudent(ctx context.Context, studentID string) ([]models.SubjectWithTeacher, bool, error)
	ListStudentsForTeacher(ctx context.Context, teacherID string) ([]models.UserInfo, error)
	ListTeachersForStudent(ctx context.Context, studentID string) ([]models.UserInfo, error)
}

// SubjectHandler exposes subject and roster endpoints.
type SubjectHandler struct {
	service subjectService
}

// NewSubjectHandler constructs the handler.
func NewSubjectHandler(svc subjectService) *SubjectHandler {
	return &SubjectHandler{service: svc}
}

// Create godoc
// @Summary Create subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body service.CreateSubjectRequest true "Subject payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subjects [post]
func (h *SubjectHandler) Create(c *gin.Context) {
	var req service.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid subject payload"))
		return
	}
	if !ensureActor(c, req.TeacherID) {
		return
	}

	subject, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// AddStudent godoc
// @Summary Enroll a student in a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param payload body service.EnrollmentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subjects/addStudent [post]
func (h *SubjectHandler) AddStudent(c *gin.Context) {
	var req service.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid enrollment payload"))
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// RemoveStudent godoc
// @Summary Remove a student from a subject
// @Tags Subjects
// @Accept json
// @Param payload body service.EnrollmentRequest true "Enrollment payload"
// @Success 204
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subjects/removeStudent [delete]
func (h *SubjectHandler) RemoveStudent(c *gin.Context) {
	var req service.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Validation(err, "invalid enrollment payload"))
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListForTeacher godoc
// @Summary Subjects owned by a teacher
// @Tags Subjects
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teacher/subjects/{teacher_id} [get]
func (h *SubjectHandler) ListForTeacher(c *gin.Context) {
	subjects, err := h.service.ListForTeacher(c.Request.Context(), c.Param("teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects)
}

// ListForStudent godoc
// @Summary Subjects a student is enrolled in, with their teacher
// @Tags Subjects
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /student/subjects/{student_id} [get]
func (h *SubjectHandler) ListForStudent(c *gin.Context) {
	subjects, hit, err := h.service.ListForStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, http.StatusOK, subjects, hit)
}

// StudentsForTeacher godoc
// @Summary Distinct students across a teacher's subjects
// @Tags Subjects
// @Produce json
// @Param teacher_id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /teacher/students/{teacher_id} [get]
func (h *SubjectHandler) StudentsForTeacher(c *gin.Context) {
	students, err := h.service.ListStudentsForTeacher(c.Request.Context(), c.Param("teacher_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// TeachersForStudent godoc
// @Summary Distinct teachers of a student's subjects
// @Tags Subjects
// @Produce json
// @Param student_id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /student/teachers/{student_id} [get]
func (h *SubjectHandler) TeachersForStudent(c *gin.Context) {
	teachers, err := h.service.ListTeachersForStudent(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers)
}
