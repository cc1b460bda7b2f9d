package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pta-api/internal/models"
)

var announcementRowColumns = []string{"id", "subject_id", "teacher_id", "title", "content", "created_at", "subject_name"}

func TestAnnouncementRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	mock.ExpectExec("INSERT INTO announcements").
		WithArgs(sqlmock.AnyArg(), "s1", "t1", "Quiz", "Friday", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	announcement := &models.Announcement{SubjectID: "s1", TeacherID: "t1", Title: "Quiz", Content: "Friday"}
	require.NoError(t, repo.Create(context.Background(), announcement))
	assert.NotEmpty(t, announcement.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepositoryListForStudentNewestFirst(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	newer := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)
	mock.ExpectQuery("JOIN enrollments e ON e.subject_id = a.subject_id\\s+WHERE e.student_id = \\$1\\s+ORDER BY a.created_at DESC").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows(announcementRowColumns).
			AddRow("a2", "s1", "t1", "Trip", "Museum", newer, "Math").
			AddRow("a1", "s1", "t1", "Quiz", "Friday", older, "Math"))

	items, err := repo.ListForStudent(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a2", items[0].ID)
	assert.Equal(t, "Math", items[0].SubjectName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepositoryListForTeacher(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	mock.ExpectQuery("WHERE a.teacher_id = \\$1").
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(announcementRowColumns))

	items, err := repo.ListForTeacher(context.Background(), "t1")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepositoryCountForStudent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAnnouncementRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM announcements a JOIN enrollments e ON e.subject_id = a.subject_id WHERE e.student_id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.CountForStudent(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}
