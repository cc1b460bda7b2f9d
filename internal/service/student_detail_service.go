package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type studentDetailRepository interface {
	Insert(ctx context.Context, detail *models.StudentDetail) error
	Latest(ctx context.Context, studentID string) (*models.StudentDetail, error)
}

// StudentDetailRequest records a new attendance/marks snapshot.
type StudentDetailRequest struct {
	StudentID  string `json:"student_id" validate:"required,uuid"`
	Attendance string `json:"attendance" validate:"required,max=64"`
	Marks      string `json:"marks" validate:"required,max=64"`
}

// StudentDetailService keeps the attendance/marks history of students.
type StudentDetailService struct {
	repo      studentDetailRepository
	users     userFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentDetailService constructs the service.
func NewStudentDetailService(repo studentDetailRepository, users userFinder, validate *validator.Validate, logger *zap.Logger) *StudentDetailService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentDetailService{repo: repo, users: users, validator: validate, logger: logger}
}

// Record appends a snapshot. The newest snapshot becomes the current one.
func (s *StudentDetailService) Record(ctx context.Context, req StudentDetailRequest) (*models.StudentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid student details payload")
	}
	if _, err := loadUser(ctx, s.users, req.StudentID, models.RoleStudent); err != nil {
		return nil, err
	}

	detail := &models.StudentDetail{StudentID: req.StudentID, Attendance: req.Attendance, Marks: req.Marks}
	if err := s.repo.Insert(ctx, detail); err != nil {
		return nil, appErrors.Internal(err, "failed to store student details")
	}
	return detail, nil
}

// Latest returns the current snapshot or nil when the student has none.
func (s *StudentDetailService) Latest(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	if err := validateID(s.validator, "student_id", studentID); err != nil {
		return nil, err
	}
	detail, err := s.repo.Latest(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load student details")
	}
	return detail, nil
}
