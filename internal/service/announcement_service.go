package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/pkg/cache"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type announcementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	ListForStudent(ctx context.Context, studentID string) ([]models.AnnouncementDetail, error)
	ListForTeacher(ctx context.Context, teacherID string) ([]models.AnnouncementDetail, error)
}

type subjectFinder interface {
	FindByID(ctx context.Context, id string) (*models.Subject, error)
}

// AnnouncementNotifier fans a freshly posted announcement out to its audience.
type AnnouncementNotifier interface {
	NotifyAnnouncement(ctx context.Context, announcement models.AnnouncementDetail) error
}

// PostAnnouncementRequest describes create payload.
type PostAnnouncementRequest struct {
	SubjectID string `json:"subject_id" validate:"required,uuid"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
	Title     string `json:"title" validate:"required,max=200"`
	Content   string `json:"content" validate:"required"`
}

// AnnouncementService handles announcement workflows.
type AnnouncementService struct {
	repo      announcementRepository
	subjects  subjectFinder
	notifier  AnnouncementNotifier
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the service. notifier and cacheSvc may be nil.
func NewAnnouncementService(repo announcementRepository, subjects subjectFinder, notifier AnnouncementNotifier, cacheSvc *CacheService, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{repo: repo, subjects: subjects, notifier: notifier, cache: cacheSvc, validator: validate, logger: logger}
}

// Post publishes an announcement to a subject the teacher owns.
func (s *AnnouncementService) Post(ctx context.Context, req PostAnnouncementRequest) (*models.AnnouncementDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid announcement payload")
	}

	subject, err := s.subjects.FindByID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Internal(err, "failed to load subject")
	}
	if subject.TeacherID != req.TeacherID {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "subject belongs to another teacher")
	}

	announcement := models.Announcement{
		SubjectID: req.SubjectID,
		TeacherID: req.TeacherID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := s.repo.Create(ctx, &announcement); err != nil {
		return nil, appErrors.Internal(err, "failed to create announcement")
	}
	detail := &models.AnnouncementDetail{Announcement: announcement, SubjectName: subject.Name}

	_ = s.cache.Invalidate(ctx, cache.Key("student", "*", "announcements"))
	if s.notifier != nil {
		if err := s.notifier.NotifyAnnouncement(ctx, *detail); err != nil {
			s.logger.Warn("announcement notification not queued", zap.String("announcement_id", detail.ID), zap.Error(err))
		}
	}
	return detail, nil
}

// ListForStudent returns announcements of the student's subjects, newest first.
func (s *AnnouncementService) ListForStudent(ctx context.Context, studentID string) ([]models.AnnouncementDetail, bool, error) {
	if err := validateID(s.validator, "student_id", studentID); err != nil {
		return nil, false, err
	}
	key := cache.Key("student", studentID, "announcements")
	var cached []models.AnnouncementDetail
	if hit, _ := s.cache.Get(ctx, key, &cached); hit {
		return cached, true, nil
	}

	items, err := s.repo.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, false, appErrors.Internal(err, "failed to list announcements")
	}
	_ = s.cache.Set(ctx, key, items, 0)
	return items, false, nil
}

// ListForTeacher returns the teacher's announcements, newest first.
func (s *AnnouncementService) ListForTeacher(ctx context.Context, teacherID string) ([]models.AnnouncementDetail, error) {
	if err := validateID(s.validator, "teacher_id", teacherID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListForTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list announcements")
	}
	return items, nil
}
