package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
	"salary-calculator/internal/service/session"
)

type LocationSelector interface {
	SelectLocation(id int64) error
	View() session.View
}

// SelectLocation выбирает объект (locationId 0 - снять выбор) и отдаёт новое состояние.
func SelectLocation(log *slog.Logger, selector LocationSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.session.update.SelectLocation"

		var req struct {
			LocationID int64 `json:"locationId"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен JSON")
			return
		}

		if err := selector.SelectLocation(req.LocationID); err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, selector.View())
	}
}
