package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/pta-api/internal/models"
)

// EnrollmentRepository handles the student-subject relation.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Exists checks whether the student is already enrolled in the subject.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, subjectID string) (bool, error) {
	const query = `SELECT 1 FROM enrollments WHERE student_id = $1 AND subject_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, studentID, subjectID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// Create persists a new enrollment. The composite key rejects duplicates with ErrDuplicate.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (student_id, subject_id, created_at) VALUES (:student_id, :subject_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// Delete removes an enrollment returning sql.ErrNoRows when nothing matched.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, subjectID string) error {
	const query = `DELETE FROM enrollments WHERE student_id = $1 AND subject_id = $2`
	res, err := r.db.ExecContext(ctx, query, studentID, subjectID)
	if err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete enrollment rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListStudentsByTeacher returns the distinct students across all subjects owned by the teacher.
func (r *EnrollmentRepository) ListStudentsByTeacher(ctx context.Context, teacherID string) ([]models.UserInfo, error) {
	const query = `SELECT DISTINCT u.id, u.full_name, u.email, u.role
FROM subjects s
JOIN enrollments e ON e.subject_id = s.id
JOIN users u ON u.id = e.student_id
WHERE s.teacher_id = $1
ORDER BY u.full_name ASC, u.id ASC`
	students := []models.UserInfo{}
	if err := r.db.SelectContext(ctx, &students, query, teacherID); err != nil {
		return nil, fmt.Errorf("list teacher students: %w", err)
	}
	return students, nil
}

// ListTeachersByStudent returns the distinct owners of the student's subjects.
func (r *EnrollmentRepository) ListTeachersByStudent(ctx context.Context, studentID string) ([]models.UserInfo, error) {
	const query = `SELECT DISTINCT u.id, u.full_name, u.email, u.role
FROM enrollments e
JOIN subjects s ON s.id = e.subject_id
JOIN users u ON u.id = s.teacher_id
WHERE e.student_id = $1
ORDER BY u.full_name ASC, u.id ASC`
	teachers := []models.UserInfo{}
	if err := r.db.SelectContext(ctx, &teachers, query, studentID); err != nil {
		return nil, fmt.Errorf("list student teachers: %w", err)
	}
	for i := range teachers {
		teachers[i].IsTeacher = true
	}
	return teachers, nil
}
