package calculate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"log/slog"

	"salary-calculator/internal/service/payroll"
	"salary-calculator/internal/service/session"
	"salary-calculator/internal/storage"
)

type MockCalculator struct {
	mock.Mock
}

func (m *MockCalculator) Calculate(in session.Input) (session.Calculation, error) {
	args := m.Called(in)
	return args.Get(0).(session.Calculation), args.Error(1)
}

func (m *MockCalculator) ClearInputs() error {
	return m.Called().Error(0)
}

func TestCalculateSalaries_Success(t *testing.T) {
	// 1. Ввод пользователя
	in := session.Input{
		GlobalTurnover: 134200,
		Target:         122000,
		Month:          "Януари",
		Year:           2025,
		Monthly: []storage.DealerMonthlyData{
			{DealerID: 1, Salary: 750, PersonalTurnover: 27582, Vouchers: 200},
		},
	}

	// 2. Ответ калькулятора
	calc := session.Calculation{
		Results: []storage.CalculationResult{{Name: "Иван Петров", Bruto: 1299.22, Bonus: 349.22, TargetBonus: 5}},
		Target:  payroll.Target{Configured: true, Reached: true, Percentage: 110},
		Summary: payroll.Summary{Dealers: 1, Bruto: 1299.22, Bonus: 349.22},
	}

	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", in).Return(calc, nil)

	handler := CalculateSalaries(slog.Default(), mockCalc)

	body := `{
		"globalTurnover": 134200,
		"target": 122000,
		"month": "Януари",
		"year": 2025,
		"monthly": [{"dealerId": 1, "salary": 750, "personalTurnover": 27582, "vouchers": 200}]
	}`

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(body)))

	// 3. Проверки
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp session.Calculation
	assert.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.Equal(t, calc, resp)
	mockCalc.AssertExpectations(t)
}

func TestCalculateSalaries_Busy(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("Calculate", mock.Anything).Return(session.Calculation{}, session.ErrBusy)

	handler := CalculateSalaries(slog.Default(), mockCalc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestCalculateSalaries_InvalidJSON(t *testing.T) {
	mockCalc := new(MockCalculator)
	handler := CalculateSalaries(slog.Default(), mockCalc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(`{"year":"x"}`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockCalc.AssertNotCalled(t, "Calculate", mock.Anything)
}

func TestClearInputs(t *testing.T) {
	mockCalc := new(MockCalculator)
	mockCalc.On("ClearInputs").Return(nil).Once()
	mockCalc.On("ClearInputs").Return(session.ErrNoLocationSelected).Once()

	handler := ClearInputs(slog.Default(), mockCalc)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/clear", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/clear", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	mockCalc.AssertExpectations(t)
}
