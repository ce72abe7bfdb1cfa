package save

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
	"salary-calculator/internal/storage"
)

type DealerCreator interface {
	AddDealer(ctx context.Context, name string, coefGeneral, coefPersonal float64) (storage.Dealer, error)
}

// SaveDealer добавляет дилера в выбранный объект.
func SaveDealer(log *slog.Logger, creator DealerCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dealers.save.SaveDealer"

		var req struct {
			Name         string  `json:"name"`
			CoefGeneral  float64 `json:"coefGeneral"`
			CoefPersonal float64 `json:"coefPersonal"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен JSON")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		dealer, err := creator.AddDealer(ctx, req.Name, req.CoefGeneral, req.CoefPersonal)
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, dealer)
	}
}
