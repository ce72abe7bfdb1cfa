package calculate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
	"salary-calculator/internal/service/session"
)

type Calculator interface {
	Calculate(in session.Input) (session.Calculation, error)
	ClearInputs() error
}

func CalculateSalaries(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate.CalculateSalaries"

		var req session.Input
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен JSON")
			return
		}

		res, err := calc.Calculate(req)
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, res)
	}
}

// ClearInputs сбрасывает последние результаты выбранного объекта.
func ClearInputs(log *slog.Logger, calc Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calculate.ClearInputs"

		if err := calc.ClearInputs(); err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]string{"status": "cleared"})
	}
}
