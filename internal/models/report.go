package models

import "time"

// StudentSummary aggregates what a teacher sees about one student.
type StudentSummary struct {
	Student           UserInfo             `json:"student"`
	LatestDetails     *StudentDetail       `json:"latest_details"`
	Subjects          []SubjectWithTeacher `json:"subjects"`
	AnnouncementCount int                  `json:"announcement_count"`
	Summary           string               `json:"summary"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

// ReportFormat enumerates supported summary export formats.
type ReportFormat string

const (
	ReportFormatCSV ReportFormat = "csv"
	ReportFormatPDF ReportFormat = "pdf"
)
