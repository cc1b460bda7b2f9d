package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/repository"
	"github.com/noah-isme/pta-api/pkg/cache"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type subjectRepository interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
	Create(ctx context.Context, subject *models.Subject) error
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.SubjectWithTeacher, error)
}

type enrollmentRepository interface {
	Exists(ctx context.Context, studentID, subjectID string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, studentID, subjectID string) error
	ListStudentsByTeacher(ctx context.Context, teacherID string) ([]models.UserInfo, error)
	ListTeachersByStudent(ctx context.Context, studentID string) ([]models.UserInfo, error)
}

// CreateSubjectRequest captures fields for creating subjects.
type CreateSubjectRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

// EnrollmentRequest identifies a student-subject pair.
type EnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	SubjectID string `json:"subject_id" validate:"required,uuid"`
}

// SubjectService manages subjects and their enrolments.
type SubjectService struct {
	subjects    subjectRepository
	enrollments enrollmentRepository
	users       userFinder
	cache       *CacheService
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewSubjectService creates a new subject service. cache may be nil.
func NewSubjectService(subjects subjectRepository, enrollments enrollmentRepository, users userFinder, cacheSvc *CacheService, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{subjects: subjects, enrollments: enrollments, users: users, cache: cacheSvc, validator: validate, logger: logger}
}

// Create registers a subject owned by a teacher.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid subject payload")
	}
	if _, err := loadUser(ctx, s.users, req.TeacherID, models.RoleTeacher); err != nil {
		return nil, err
	}

	subject := &models.Subject{Name: req.Name, TeacherID: req.TeacherID}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, appErrors.Internal(err, "failed to create subject")
	}
	return subject, nil
}

// Enroll adds a student to a subject. Enrolling the same pair twice is a conflict.
func (s *SubjectService) Enroll(ctx context.Context, req EnrollmentRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid enrollment payload")
	}
	if _, err := s.getSubject(ctx, req.SubjectID); err != nil {
		return nil, err
	}
	if _, err := loadUser(ctx, s.users, req.StudentID, models.RoleStudent); err != nil {
		return nil, err
	}

	exists, err := s.enrollments.Exists(ctx, req.StudentID, req.SubjectID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to check enrollment")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrConflict, "student already enrolled in subject")
	}

	enrollment := &models.Enrollment{StudentID: req.StudentID, SubjectID: req.SubjectID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "student already enrolled in subject")
		}
		return nil, appErrors.Internal(err, "failed to enroll student")
	}
	s.invalidateStudent(ctx, req.StudentID)
	return enrollment, nil
}

// Unenroll removes a student from a subject.
func (s *SubjectService) Unenroll(ctx context.Context, req EnrollmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Validation(err, "invalid enrollment payload")
	}
	if err := s.enrollments.Delete(ctx, req.StudentID, req.SubjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
		}
		return appErrors.Internal(err, "failed to remove enrollment")
	}
	s.invalidateStudent(ctx, req.StudentID)
	return nil
}

// ListForTeacher returns the subjects a teacher owns, ordered by name.
func (s *SubjectService) ListForTeacher(ctx context.Context, teacherID string) ([]models.Subject, error) {
	if err := validateID(s.validator, "teacher_id", teacherID); err != nil {
		return nil, err
	}
	subjects, err := s.subjects.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subjects")
	}
	return subjects, nil
}

// ListForStudent returns enrolled subjects with their teacher and reports whether the cache served them.
func (s *SubjectService) ListForStudent(ctx context.Context, studentID string) ([]models.SubjectWithTeacher, bool, error) {
	if err := validateID(s.validator, "student_id", studentID); err != nil {
		return nil, false, err
	}
	key := cache.Key("student", studentID, "subjects")
	var cached []models.SubjectWithTeacher
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, true, nil
	}

	subjects, err := s.subjects.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to list subjects")
	}
	_ = s.cache.Set(ctx, key, subjects, 0)
	return subjects, false, nil
}

// ListStudentsForTeacher returns the distinct students across the teacher's subjects.
func (s *SubjectService) ListStudentsForTeacher(ctx context.Context, teacherID string) ([]models.UserInfo, error) {
	if err := validateID(s.validator, "teacher_id", teacherID); err != nil {
		return nil, err
	}
	students, err := s.enrollments.ListStudentsByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list students")
	}
	return students, nil
}

// ListTeachersForStudent returns the distinct teachers of the student's subjects.
func (s *SubjectService) ListTeachersForStudent(ctx context.Context, studentID string) ([]models.UserInfo, error) {
	if err := validateID(s.validator, "student_id", studentID); err != nil {
		return nil, err
	}
	teachers, err := s.enrollments.ListTeachersByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list teachers")
	}
	return teachers, nil
}

func (s *SubjectService) getSubject(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.subjects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Internal(err, "failed to load subject")
	}
	return subject, nil
}

// invalidateStudent drops every cached list of the student.
func (s *SubjectService) invalidateStudent(ctx context.Context, studentID string) {
	_ = s.cache.Invalidate(ctx, cache.Key("student", studentID, "*"))
}
