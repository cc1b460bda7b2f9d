package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
	"github.com/noah-isme/pta-api/pkg/export"
)

type reportSubjectRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.SubjectWithTeacher, error)
}

type reportDetailRepository interface {
	Latest(ctx context.Context, studentID string) (*models.StudentDetail, error)
}

type reportAnnouncementRepository interface {
	CountForStudent(ctx context.Context, studentID string) (int, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title, paragraph string) ([]byte, error)
}

// ReportFile is a rendered summary export.
type ReportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService builds the per-student summary teachers see.
type ReportService struct {
	users         userFinder
	subjects      reportSubjectRepository
	details       reportDetailRepository
	announcements reportAnnouncementRepository
	csv           csvRenderer
	pdf           pdfRenderer
	validator     *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

// NewReportService constructs a ReportService. Nil renderers fall back to pkg/export.
func NewReportService(users userFinder, subjects reportSubjectRepository, details reportDetailRepository, announcements reportAnnouncementRepository, csv csvRenderer, pdf pdfRenderer, validate *validator.Validate, logger *zap.Logger) *ReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ReportService{
		users:         users,
		subjects:      subjects,
		details:       details,
		announcements: announcements,
		csv:           csv,
		pdf:           pdf,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
}

// Summarize aggregates identity, latest details, subjects and announcement count of a student.
func (s *ReportService) Summarize(ctx context.Context, studentID string) (*models.StudentSummary, error) {
	if err := validateID(s.validator, "student_id", studentID); err != nil {
		return nil, err
	}
	student, err := loadUser(ctx, s.users, studentID, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	latest, err := s.details.Latest(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load student details")
	}
	subjects, err := s.subjects.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to list subjects")
	}
	count, err := s.announcements.CountForStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to count announcements")
	}

	summary := &models.StudentSummary{
		Student:           student.Info(),
		LatestDetails:     latest,
		Subjects:          subjects,
		AnnouncementCount: count,
		GeneratedAt:       s.now().UTC(),
	}
	summary.Summary = describe(summary)
	return summary, nil
}

// Export renders the student summary in the requested format.
func (s *ReportService) Export(ctx context.Context, studentID string, format models.ReportFormat) (*ReportFile, error) {
	format = models.ReportFormat(strings.ToLower(string(format)))
	if format != models.ReportFormatCSV && format != models.ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	summary, err := s.Summarize(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dataset := summaryDataset(summary)
	file := &ReportFile{Filename: fmt.Sprintf("student-summary-%s.%s", summary.Student.ID, format)}
	switch format {
	case models.ReportFormatCSV:
		file.ContentType = "text/csv"
		file.Data, err = s.csv.Render(dataset)
	case models.ReportFormatPDF:
		file.ContentType = "application/pdf"
		file.Data, err = s.pdf.Render(dataset, "Student summary: "+summary.Student.Name, summary.Summary)
	}
	if err != nil {
		return nil, appErrors.Internal(err, "failed to render summary")
	}
	s.logger.Debug("student summary exported", zap.String("student_id", studentID), zap.String("format", string(format)), zap.Int("bytes", len(file.Data)))
	return file, nil
}

func describe(summary *models.StudentSummary) string {
	var b strings.Builder
	name := summary.Student.Name
	switch len(summary.Subjects) {
	case 0:
		fmt.Fprintf(&b, "%s is not enrolled in any subject.", name)
	case 1:
		fmt.Fprintf(&b, "%s is enrolled in 1 subject (%s).", name, summary.Subjects[0].Name)
	default:
		names := make([]string, 0, len(summary.Subjects))
		for _, subject := range summary.Subjects {
			names = append(names, subject.Name)
		}
		fmt.Fprintf(&b, "%s is enrolled in %d subjects (%s).", name, len(names), strings.Join(names, ", "))
	}
	if d := summary.LatestDetails; d != nil {
		fmt.Fprintf(&b, " Latest record shows attendance %s and marks %s.", d.Attendance, d.Marks)
	} else {
		b.WriteString(" No attendance or marks have been recorded yet.")
	}
	fmt.Fprintf(&b, " %d announcement(s) have been posted to their subjects.", summary.AnnouncementCount)
	return b.String()
}

func summaryDataset(summary *models.StudentSummary) export.Dataset {
	data := export.Dataset{Headers: []string{"Field", "Value"}}
	data.AddRow("Student", summary.Student.Name)
	data.AddRow("Email", summary.Student.Email)
	if d := summary.LatestDetails; d != nil {
		data.AddRow("Attendance", d.Attendance)
		data.AddRow("Marks", d.Marks)
		data.AddRow("Recorded at", d.CreatedAt.Format(time.RFC3339))
	}
	for _, subject := range summary.Subjects {
		data.AddRow("Subject", fmt.Sprintf("%s (%s)", subject.Name, subject.TeacherName))
	}
	data.AddRow("Announcements", fmt.Sprintf("%d", summary.AnnouncementCount))
	data.AddRow("Generated at", summary.GeneratedAt.Format(time.RFC3339))
	return data
}
