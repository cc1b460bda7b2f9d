package models

import "time"

// Announcement is a teacher post scoped to one subject.
type Announcement struct {
	ID        string    `db:"id" json:"id"`
	SubjectID string    `db:"subject_id" json:"subject_id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AnnouncementDetail adds the subject name for list views.
type AnnouncementDetail struct {
	Announcement
	SubjectName string `db:"subject_name" json:"subject_name"`
}
