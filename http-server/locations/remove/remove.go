package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"salary-calculator/http-server/response"
	"salary-calculator/internal/service/session"
)

type LocationRemover interface {
	RemoveLocation(ctx context.Context, id int64, policy session.CascadePolicy) (int, error)
}

// DeleteLocation: без ?cascade=true объект с дилерами не удаляется (409),
// UI переспрашивает и повторяет запрос с cascade.
func DeleteLocation(log *slog.Logger, remover LocationRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.locations.remove.DeleteLocation"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен id")
			return
		}

		policy := session.Reject
		if cascade, _ := strconv.ParseBool(r.URL.Query().Get("cascade")); cascade {
			policy = session.Cascade
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		removed, err := remover.RemoveLocation(ctx, id, policy)
		if err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]int{"dealersRemoved": removed})
	}
}
