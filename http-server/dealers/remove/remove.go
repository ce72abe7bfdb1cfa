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
)

type DealerRemover interface {
	RemoveDealer(ctx context.Context, id int64) error
}

func DeleteDealer(log *slog.Logger, remover DealerRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dealers.remove.DeleteDealer"

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			response.Error(w, r, http.StatusBadRequest, "Некоректен id")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := remover.RemoveDealer(ctx, id); err != nil {
			response.SessionError(w, r, log, op, err)
			return
		}

		render.JSON(w, r, map[string]string{"status": "deleted"})
	}
}
