package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/internal/storage"
)

type LocationsProvider interface {
	Locations() []storage.Location
}

func GetLocations(log *slog.Logger, locations LocationsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, locations.Locations())
	}
}
