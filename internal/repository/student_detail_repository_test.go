package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pta-api/internal/models"
)

func TestStudentDetailRepositoryInsert(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentDetailRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO student_details (student_id, attendance, marks, created_at) VALUES ($1, $2, $3, $4) RETURNING id")).
		WithArgs("p1", "95%", "A", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	detail := &models.StudentDetail{StudentID: "p1", Attendance: "95%", Marks: "A"}
	require.NoError(t, repo.Insert(context.Background(), detail))
	assert.Equal(t, int64(7), detail.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentDetailRepositoryLatest(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentDetailRepository(db)

	mock.ExpectQuery("FROM student_details WHERE student_id = \\$1 ORDER BY id DESC LIMIT 1").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "attendance", "marks", "created_at"}).
			AddRow(int64(9), "p1", "90%", "B+", time.Now()))

	detail, err := repo.Latest(context.Background(), "p1")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, int64(9), detail.ID)
	assert.Equal(t, "B+", detail.Marks)
}

func TestStudentDetailRepositoryLatestNone(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentDetailRepository(db)

	mock.ExpectQuery("FROM student_details").WillReturnError(sql.ErrNoRows)

	detail, err := repo.Latest(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, detail)
}
