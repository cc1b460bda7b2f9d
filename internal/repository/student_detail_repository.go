package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/pta-api/internal/models"
)

// StudentDetailRepository stores attendance/marks snapshots.
type StudentDetailRepository struct {
	db *sqlx.DB
}

// NewStudentDetailRepository constructs the repository.
func NewStudentDetailRepository(db *sqlx.DB) *StudentDetailRepository {
	return &StudentDetailRepository{db: db}
}

// Insert appends a snapshot and fills in the generated ID.
func (r *StudentDetailRepository) Insert(ctx context.Context, detail *models.StudentDetail) error {
	if detail.CreatedAt.IsZero() {
		detail.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO student_details (student_id, attendance, marks, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &detail.ID, query, detail.StudentID, detail.Attendance, detail.Marks, detail.CreatedAt); err != nil {
		return fmt.Errorf("insert student detail: %w", err)
	}
	return nil
}

// Latest returns the most recently inserted snapshot or nil when none exists.
func (r *StudentDetailRepository) Latest(ctx context.Context, studentID string) (*models.StudentDetail, error) {
	const query = `SELECT id, student_id, attendance, marks, created_at FROM student_details WHERE student_id = $1 ORDER BY id DESC LIMIT 1`
	var detail models.StudentDetail
	if err := r.db.GetContext(ctx, &detail, query, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("latest student detail: %w", err)
	}
	return &detail, nil
}
