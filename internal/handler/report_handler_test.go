package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/pta-api/internal/models"
	"github.com/noah-isme/pta-api/internal/service"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type reportServiceMock struct {
	format models.ReportFormat
}

func (m *reportServiceMock) Summarize(ctx context.Context, id string) (*models.StudentSummary, error) {
	return &models.StudentSummary{Student: models.UserInfo{ID: id, Name: "sam"}, Summary: "sam is enrolled in 0 subjects."}, nil
}

func (m *reportServiceMock) Export(ctx context.Context, id string, format models.ReportFormat) (*service.ReportFile, error) {
	m.format = format
	if format != models.ReportFormatCSV {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported format")
	}
	return &service.ReportFile{Filename: "student-summary-" + id + ".csv", ContentType: "text/csv", Data: []byte("Field,Value\n")}, nil
}

func TestReportHandlerSummarize(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/summarize/student/"+studentID, "", nil)
	c.Params = gin.Params{{Key: "student_id", Value: studentID}}

	NewReportHandler(&reportServiceMock{}).Summarize(c)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].(map[string]interface{})
	assert.Contains(t, data["summary"], "sam is enrolled")
}

func TestReportHandlerExportDefaultsToCSV(t *testing.T) {
	svc := &reportServiceMock{}
	c, w := newTestContext(http.MethodGet, "/summarize/student/"+studentID+"/export", "", nil)
	c.Params = gin.Params{{Key: "student_id", Value: studentID}}

	NewReportHandler(svc).Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ReportFormatCSV, svc.format)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "student-summary-"+studentID+".csv")
	assert.Equal(t, "Field,Value\n", w.Body.String())
}

func TestReportHandlerExportUnsupportedFormat(t *testing.T) {
	svc := &reportServiceMock{}
	c, w := newTestContext(http.MethodGet, "/summarize/student/"+studentID+"/export?format=xlsx", "", nil)
	c.Params = gin.Params{{Key: "student_id", Value: studentID}}

	NewReportHandler(svc).Export(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, models.ReportFormat("xlsx"), svc.format)
}
