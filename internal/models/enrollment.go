package models

import "time"

// Enrollment links a student to a subject. The pair is unique.
type Enrollment struct {
	StudentID string    `db:"student_id" json:"student_id"`
	SubjectID string    `db:"subject_id" json:"subject_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
