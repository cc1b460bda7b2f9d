package models

import "time"

// StudentDetail is one attendance/marks snapshot. The row with the highest ID is current.
type StudentDetail struct {
	ID         int64     `db:"id" json:"id"`
	StudentID  string    `db:"student_id" json:"student_id"`
	Attendance string    `db:"attendance" json:"attendance"`
	Marks      string    `db:"marks" json:"marks"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
