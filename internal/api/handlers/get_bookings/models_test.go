package get_bookings

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	req, err := ToServiceRequest(url.Values{
		"groomerId":       {"g-1"},
		"status":          {"Completed"},
		"from":            {"2024-06-01"},
		"to":              {"2024-06-07"},
		"includeInactive": {"true"},
	}, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "g-1", *req.GroomerID)
	assert.Equal(t, "Completed", *req.Status)
	assert.Equal(t, 1, req.StartDate.Day())
	assert.Equal(t, 7, req.EndDate.Day())
	assert.True(t, req.IncludeInactive)
}

func TestToServiceRequest_SingleDay(t *testing.T) {
	req, err := ToServiceRequest(url.Values{"date": {"2024-06-01"}, "from": {"2024-05-01"}}, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, req.StartDate, req.EndDate)
	assert.Nil(t, req.GroomerID)
}

func TestToServiceRequest_Invalid(t *testing.T) {
	_, err := ToServiceRequest(url.Values{"date": {"June 1"}}, time.UTC)
	assert.Error(t, err)

	_, err = ToServiceRequest(url.Values{"includeInactive": {"maybe"}}, time.UTC)
	assert.Error(t, err)
}
