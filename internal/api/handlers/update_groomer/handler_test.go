package update_groomer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers/create_groomer"
	"github.com/bestbuddies/grooming-booking/internal/api/handlers/list_groomers"
	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/internal/service/staff"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

func TestGroomerHandlers(t *testing.T) {
	svc := staff.NewService(memory.NewStore(), 3, logger.NewNop())

	rec := httptest.NewRecorder()
	create_groomer.NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers", strings.NewReader(`{"name":"Ana"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"capacity":3`)

	groomers, err := svc.ListGroomers(context.Background())
	require.NoError(t, err)
	require.Len(t, groomers.Groomers, 1)
	id := groomers.Groomers[0].ID

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/groomers/"+id, strings.NewReader(`{"maxDailyBookings":5}`))
	rec = httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, mux.SetURLVars(req, map[string]string{"groomerId": id}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"capacity":5`)

	rec = httptest.NewRecorder()
	list_groomers.NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/groomers", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"maxDailyBookings":5`)
}

func TestHandle_Errors(t *testing.T) {
	svc := staff.NewService(memory.NewStore(), 3, logger.NewNop())
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/groomers/nope", strings.NewReader(`{"name":"X"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, mux.SetURLVars(req, map[string]string{"groomerId": "nope"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	create_groomer.NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/api/v1/admin/groomers", strings.NewReader(`{"name":"  "}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
