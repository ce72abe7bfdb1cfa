package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"salary-calculator/internal/service/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func Error(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

// StatusOf переводит ошибку сессии в HTTP-статус.
func StatusOf(err error) int {
	var ve *session.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, session.ErrNoLocationSelected),
		errors.Is(err, session.ErrNoResults):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrLocationNotFound),
		errors.Is(err, session.ErrDealerNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrLocationHasDealers),
		errors.Is(err, session.ErrBusy):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// SessionError пишет ответ с текстом для пользователя; 500 логируется как ошибка.
func SessionError(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
	} else {
		log.Warn("request rejected", slog.String("op", op), slog.String("error", err.Error()))
	}

	Error(w, r, status, session.Message(err))
}
