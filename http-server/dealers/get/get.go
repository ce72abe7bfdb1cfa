package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/internal/storage"
)

type DealersProvider interface {
	Dealers() []storage.Dealer
}

// GetDealers - дилеры выбранного объекта.
func GetDealers(log *slog.Logger, dealers DealersProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, dealers.Dealers())
	}
}
