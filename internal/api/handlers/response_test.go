package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "номер не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":404,"message":"номер не найден"}`, rec.Body.String())
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		FullName string `json:"fullName"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"fullName":"Asha","isAdmin":true}`))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"fullName":"Asha"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Asha", dst.FullName)
}

func TestTrimSentinel(t *testing.T) {
	sentinel := errors.New("rooms: invalid input data")
	err := fmt.Errorf("%w: price must be positive", sentinel)

	assert.Equal(t, "price must be positive", TrimSentinel(err, sentinel))
	assert.Equal(t, "other", TrimSentinel(errors.New("other"), sentinel))
}

func TestActorAndPathUUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, Actor(req))

	user := domain.Identity{ID: uuid.New(), Email: "a@b.c"}
	req = req.WithContext(WithSession(req.Context(), &domain.Session{User: user}))
	require.NotNil(t, Actor(req))
	assert.Equal(t, user.ID, Actor(req).ID)

	id := uuid.New()
	req = mux.SetURLVars(req, map[string]string{"roomId": id.String()})
	got, err := PathUUID(req, "roomId")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = PathUUID(req, "bookingId")
	assert.Error(t, err)
}
