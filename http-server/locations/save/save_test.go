package save

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"

	"salary-calculator/http-server/response"
	"salary-calculator/internal/service/session"
	"salary-calculator/internal/storage"
)

type MockLocationCreator struct {
	mock.Mock
}

func (m *MockLocationCreator) AddLocation(ctx context.Context, name, city, address string, typ storage.LocationType) (storage.Location, error) {
	args := m.Called(ctx, name, city, address, typ)
	return args.Get(0).(storage.Location), args.Error(1)
}

// Тест: объект создан
func TestSaveLocation_Success(t *testing.T) {
	mockCreator := new(MockLocationCreator)
	created := storage.Location{ID: 42, Name: "Склад", City: "Сливен", Type: storage.LocationWarehouse}

	mockCreator.On("AddLocation", mock.Anything, "Склад", "Сливен", "", storage.LocationWarehouse).Return(created, nil)

	handler := SaveLocation(slog.Default(), mockCreator)

	req := httptest.NewRequest(http.MethodPost, "/api/locations",
		strings.NewReader(`{"name":"Склад","city":"Сливен","type":"warehouse"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp storage.Location
	assert.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.Equal(t, created, resp)

	mockCreator.AssertExpectations(t)
}

// Тест: ошибка проверки ввода - 400 и текст для пользователя
func TestSaveLocation_Validation(t *testing.T) {
	mockCreator := new(MockLocationCreator)
	mockCreator.On("AddLocation", mock.Anything, "", "", "", storage.LocationType("")).
		Return(storage.Location{}, &session.ValidationError{Field: "name", Message: "Моля, въведи име на обекта!"})

	handler := SaveLocation(slog.Default(), mockCreator)

	req := httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.ErrorResponse
	assert.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.Equal(t, "Моля, въведи име на обекта!", resp.Error)
}

// Тест: невалидный JSON, мок не вызывается
func TestSaveLocation_InvalidJSON(t *testing.T) {
	mockCreator := new(MockLocationCreator)
	handler := SaveLocation(slog.Default(), mockCreator)

	req := httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCreator.AssertNotCalled(t, "AddLocation")
}

func TestSaveLocation_InternalError(t *testing.T) {
	mockCreator := new(MockLocationCreator)
	mockCreator.On("AddLocation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storage.Location{}, errors.New("boom"))

	handler := SaveLocation(slog.Default(), mockCreator)

	req := httptest.NewRequest(http.MethodPost, "/api/locations", strings.NewReader(`{"name":"a","city":"b","type":"store"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
