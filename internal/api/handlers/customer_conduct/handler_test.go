package customer_conduct

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

var admin = domain.Actor{ID: "a-1", Kind: domain.ActorAdmin}

func newHandler() *Handler {
	svc := conduct.NewService(memory.NewStore(), conduct.Options{HardLimit: 2, WatchThreshold: 1, BanLiftFee: 500}, nil, logger.NewNop())
	return NewHandler(svc, logger.NewNop())
}

func call(t *testing.T, fn http.HandlerFunc, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"customerId": "c-1"})
	req = req.WithContext(middleware.WithActor(req.Context(), admin))
	rec := httptest.NewRecorder()
	fn(rec, req)

	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestConductFlow(t *testing.T) {
	h := newHandler()

	rec, out := call(t, h.HandleEnforce, http.MethodPost, "/enforce", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, out["banned"])

	for i := 0; i < 2; i++ {
		rec, out = call(t, h.HandleWarn, http.MethodPost, "/warnings", `{"reason":"Late"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, float64(2), out["warningCount"])
	assert.Equal(t, false, out["isBanned"])
	assert.Equal(t, "at_limit", out["reviewLevel"])

	rec, out = call(t, h.HandleReview, http.MethodGet, "/review", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["customers"], 1)

	rec, out = call(t, h.HandleEnforce, http.MethodPost, "/enforce", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["banned"])

	rec, _ = call(t, h.HandleLift, http.MethodPost, "/lift", `{"feePaid":false}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, out = call(t, h.HandleLift, http.MethodPost, "/lift", `{"feePaid":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, out["isBanned"])
	assert.Equal(t, float64(0), out["warningCount"])
	assert.Equal(t, float64(500), out["banLiftFee"])
}

func TestHandleWarn_EmptyReason(t *testing.T) {
	rec, _ := call(t, newHandler().HandleWarn, http.MethodPost, "/warnings", `{"reason":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleBan_Explicit(t *testing.T) {
	h := newHandler()
	rec, out := call(t, h.HandleBan, http.MethodPost, "/ban", `{"reason":"Abusive"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["isBanned"])
	assert.Equal(t, "Abusive", out["banReason"])

	rec, out = call(t, h.HandleGet, http.MethodGet, "/conduct", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "banned", out["reviewLevel"])
}
