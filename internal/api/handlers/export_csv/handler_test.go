package export_csv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	list *models.RegistrationListResponse
	err  error
}

func (f *fakeService) ListByIndustry(ctx context.Context, industry domain.Industry) (*models.RegistrationListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func doExport(t *testing.T, svc *fakeService, industry string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(svc, noopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/industries/{industry}/registrations/export", handler.Handle)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/industries/"+industry+"/registrations/export", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_WritesBOMAndRows(t *testing.T) {
	svc := &fakeService{list: &models.RegistrationListResponse{
		Registrations: []models.RegistrationResponse{{
			ID:        "a",
			Date:      "2026-03-02",
			Industry:  "건설업",
			Company:   "한빛건설",
			Applicant: "김철수",
			Phone:     "010-1234-5678",
			CreatedAt: "2026-02-01T09:00:00Z",
		}},
		Total: 1,
	}}

	rec := doExport(t, svc, "건설업")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body := rec.Body.Bytes()
	require.True(t, len(body) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3], "CSV must start with a UTF-8 BOM")

	text := string(body[3:])
	lines := strings.Split(strings.TrimSpace(text), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "산업군,교육일자,회사명,신청자,연락처,신청일시", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "한빛건설")
	assert.Contains(t, lines[1], "010-1234-5678")
}

func TestHandle_EmptyLedgerStillHasHeader(t *testing.T) {
	svc := &fakeService{list: &models.RegistrationListResponse{Total: 0}}

	rec := doExport(t, svc, "제조업")

	require.Equal(t, http.StatusOK, rec.Code)
	text := string(rec.Body.Bytes()[3:])
	assert.Equal(t, "산업군,교육일자,회사명,신청자,연락처,신청일시", strings.TrimSpace(text))
}

func TestHandle_UnknownIndustry(t *testing.T) {
	svc := &fakeService{err: registrations.ErrUnknownIndustry}

	rec := doExport(t, svc, "농업")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
