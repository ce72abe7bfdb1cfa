package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"

	"salary-calculator/internal/service/session"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&session.ValidationError{Field: "name", Message: "x"}, http.StatusBadRequest},
		{session.ErrNoLocationSelected, http.StatusBadRequest},
		{session.ErrNoResults, http.StatusBadRequest},
		{fmt.Errorf("op: %w", session.ErrLocationNotFound), http.StatusNotFound},
		{session.ErrDealerNotFound, http.StatusNotFound},
		{session.ErrLocationHasDealers, http.StatusConflict},
		{session.ErrBusy, http.StatusConflict},
		{errors.New("disk"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestSessionError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	SessionError(rr, req, slog.Default(), "test", session.ErrBusy)

	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp ErrorResponse
	require.NoError(t, render.DecodeJSON(rr.Body, &resp))
	assert.Equal(t, session.Message(session.ErrBusy), resp.Error)
}
