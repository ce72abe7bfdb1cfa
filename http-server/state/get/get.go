package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/internal/service/session"
)

type StateProvider interface {
	View() session.View
}

// GetState - всё, что нужно UI для отрисовки: объекты, выбор, дилеры, результаты.
func GetState(log *slog.Logger, state StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, state.View())
	}
}
