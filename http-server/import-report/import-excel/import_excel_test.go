package import_excel

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"log/slog"

	importxls "salary-calculator/internal/service/import-excel"
	"salary-calculator/internal/service/session"
)

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) ImportTurnovers(r io.Reader) (importxls.Result, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(string(data))
	return args.Get(0).(importxls.Result), args.Error(1)
}

func uploadRequest(t *testing.T, field, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "turnovers.xlsx")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import/excel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImportExcel_Success(t *testing.T) {
	res := importxls.Result{Success: true, Matched: 1, NotFound: []string{}, Turnovers: map[int64]float64{1: 27582}}

	mockImporter := new(MockImporter)
	mockImporter.On("ImportTurnovers", "xlsx-bytes").Return(res, nil)

	rr := httptest.NewRecorder()
	ImportExcel(slog.Default(), mockImporter).ServeHTTP(rr, uploadRequest(t, "file", "xlsx-bytes"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp importxls.Result
	assert.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 27582.0, resp.Turnovers[1])
	mockImporter.AssertExpectations(t)
}

// Ошибка формата листа - 200 с success=false
func TestImportExcel_SheetRejected(t *testing.T) {
	mockImporter := new(MockImporter)
	mockImporter.On("ImportTurnovers", mock.Anything).Return(importxls.Result{Error: importxls.MsgNoNameColumn}, nil)

	rr := httptest.NewRecorder()
	ImportExcel(slog.Default(), mockImporter).ServeHTTP(rr, uploadRequest(t, "file", "x"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestImportExcel_NoFile(t *testing.T) {
	mockImporter := new(MockImporter)

	rr := httptest.NewRecorder()
	ImportExcel(slog.Default(), mockImporter).ServeHTTP(rr, uploadRequest(t, "other", "x"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockImporter.AssertNotCalled(t, "ImportTurnovers", mock.Anything)
}

func TestImportExcel_NoLocation(t *testing.T) {
	mockImporter := new(MockImporter)
	mockImporter.On("ImportTurnovers", mock.Anything).Return(importxls.Result{}, session.ErrNoLocationSelected)

	rr := httptest.NewRecorder()
	ImportExcel(slog.Default(), mockImporter).ServeHTTP(rr, uploadRequest(t, "file", "x"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
