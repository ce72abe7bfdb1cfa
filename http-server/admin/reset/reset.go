package reset

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
)

type Resetter interface {
	Reset(ctx context.Context) error
}

// ResetAll стирает объекты и дилеров; объекты по умолчанию загружаются заново.
func ResetAll(log *slog.Logger, resetter Resetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.reset.ResetAll"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := resetter.Reset(ctx); err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]string{"status": "reset"})
	}
}
