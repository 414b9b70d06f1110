package manage_absences

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/internal/service/staff"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

func setup(t *testing.T) *Handler {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SaveGroomer(context.Background(), &domain.Groomer{ID: "g-1", Name: "Ana", Active: true}))
	return NewHandler(staff.NewService(store, 3, logger.NewNop()), time.UTC, logger.NewNop())
}

func TestAbsenceRequestAndDecision(t *testing.T) {
	h := setup(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers/g-1/absences",
		strings.NewReader(`{"date":"2099-03-01","reason":"Vet visit"}`))
	req = mux.SetURLVars(req, map[string]string{"groomerId": "g-1"})
	rec := httptest.NewRecorder()
	h.HandleRequest(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.AbsenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "2099-03-01", created.Date)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers/g-1/absences",
		strings.NewReader(`{"date":"2099-03-01"}`))
	h.HandleRequest(rec, mux.SetURLVars(req, map[string]string{"groomerId": "g-1"}))
	assert.Equal(t, http.StatusConflict, rec.Code)

	decide := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/absences/"+created.ID+"/decision",
			strings.NewReader(`{"approve":true}`))
		rec := httptest.NewRecorder()
		h.HandleDecide(rec, mux.SetURLVars(req, map[string]string{"absenceId": created.ID}))
		return rec
	}
	rec = decide()
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	assert.Equal(t, http.StatusConflict, decide().Code)

	rec = httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/absences?groomerId=g-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list models.AbsenceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Absences, 1)
}

func TestHandleRequest_UnknownGroomer(t *testing.T) {
	h := setup(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers/g-9/absences",
		strings.NewReader(`{"date":"2099-03-01"}`))
	rec := httptest.NewRecorder()
	h.HandleRequest(rec, mux.SetURLVars(req, map[string]string{"groomerId": "g-9"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRequest_BadDate(t *testing.T) {
	h := setup(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers/g-1/absences",
		strings.NewReader(`{"date":"01/03/2099"}`))
	rec := httptest.NewRecorder()
	h.HandleRequest(rec, mux.SetURLVars(req, map[string]string{"groomerId": "g-1"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
