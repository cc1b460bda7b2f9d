package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/pta-api/internal/models"
)

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

const announcementColumns = `a.id, a.subject_id, a.teacher_id, a.title, a.content, a.created_at, s.name AS subject_name`

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO announcements (id, subject_id, teacher_id, title, content, created_at)
VALUES (:id, :subject_id, :teacher_id, :title, :content, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// ListForStudent returns announcements of every subject the student is enrolled in, newest first.
func (r *AnnouncementRepository) ListForStudent(ctx context.Context, studentID string) ([]models.AnnouncementDetail, error) {
	query := `SELECT ` + announcementColumns + `
FROM announcements a
JOIN subjects s ON s.id = a.subject_id
JOIN enrollments e ON e.subject_id = a.subject_id
WHERE e.student_id = $1
ORDER BY a.created_at DESC, a.id DESC`
	announcements := []models.AnnouncementDetail{}
	if err := r.db.SelectContext(ctx, &announcements, query, studentID); err != nil {
		return nil, fmt.Errorf("list student announcements: %w", err)
	}
	return announcements, nil
}

// ListForTeacher returns announcements authored by the teacher, newest first.
func (r *AnnouncementRepository) ListForTeacher(ctx context.Context, teacherID string) ([]models.AnnouncementDetail, error) {
	query := `SELECT ` + announcementColumns + `
FROM announcements a
JOIN subjects s ON s.id = a.subject_id
WHERE a.teacher_id = $1
ORDER BY a.created_at DESC, a.id DESC`
	announcements := []models.AnnouncementDetail{}
	if err := r.db.SelectContext(ctx, &announcements, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher announcements: %w", err)
	}
	return announcements, nil
}

// CountForStudent counts announcements visible to the student.
func (r *AnnouncementRepository) CountForStudent(ctx context.Context, studentID string) (int, error) {
	const query = `SELECT COUNT(*) FROM announcements a JOIN enrollments e ON e.subject_id = a.subject_id WHERE e.student_id = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, studentID); err != nil {
		return 0, fmt.Errorf("count student announcements: %w", err)
	}
	return total, nil
}
