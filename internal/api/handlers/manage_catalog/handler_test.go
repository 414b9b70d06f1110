package manage_catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuddies/grooming-booking/internal/infra/storage/memory"
	"github.com/bestbuddies/grooming-booking/pkg/logger"
)

const doc = `{
  "packages": [{"id":"full-groom","name":"Full Groom","tiers":[{"label":"Small","price":50},{"label":"Large","price":80}]}],
  "addOns": [{"key":"teeth","label":"Teeth brushing","price":15}],
  "singleServices": [],
  "weightBrackets": [{"label":"Small","minKg":0,"maxKg":10}],
  "singleServiceThresholdKg": 10
}`

func TestCatalog_GetBeforeSeed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(memory.NewStore(), logger.NewNop()).HandleGet(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalog_ReplaceAndRead(t *testing.T) {
	store := memory.NewStore()
	h := NewHandler(store, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleUpdate(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/catalog", strings.NewReader(doc)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"full-groom"`)

	c, err := store.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)
	p, ok := c.FindPackage("full-groom")
	require.True(t, ok)
	assert.Len(t, p.Tiers, 2)
}

func TestCatalog_RejectsPackageWithoutTiers(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(memory.NewStore(), logger.NewNop()).HandleUpdate(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/catalog",
		strings.NewReader(`{"packages":[{"id":"bath","name":"Bath","tiers":[]}]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
