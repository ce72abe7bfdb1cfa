package get

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"

	"salary-calculator/internal/service/session"
	"salary-calculator/internal/storage"
)

type MockStateProvider struct {
	mock.Mock
}

func (m *MockStateProvider) View() session.View {
	return m.Called().Get(0).(session.View)
}

func TestGetState(t *testing.T) {
	view := session.View{
		Locations: []storage.Location{{ID: 1, Name: "Офис", City: "Ямбол", Type: storage.LocationOffice}},
		Dealers:   []storage.Dealer{},
		Results:   []storage.CalculationResult{},
	}

	mockState := new(MockStateProvider)
	mockState.On("View").Return(view)

	rr := httptest.NewRecorder()
	GetState(slog.Default(), mockState).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp session.View
	assert.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.Equal(t, view, resp)
	assert.Nil(t, resp.Selected)
}
