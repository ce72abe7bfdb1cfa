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

type LocationCreator interface {
	AddLocation(ctx context.Context, name, city, address string, typ storage.LocationType) (storage.Location, error)
}

func SaveLocation(log *slog.Logger, creator LocationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.locations.save.SaveLocation"

		var req struct {
			Name    string               `json:"name"`
			City    string               `json:"city"`
			Address string               `json:"address"`
			Type    storage.LocationType `json:"type"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен JSON")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		loc, err := creator.AddLocation(ctx, req.Name, req.City, req.Address, req.Type)
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, loc)
	}
}
