package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTransition(t *testing.T) {
	m := NewWithRegisterer("grooming-booking", prometheus.NewRegistry())

	m.RecordTransition("confirm", "ok")
	m.RecordTransition("confirm", "ok")
	m.RecordTransition("confirm", "rejected")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("confirm", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("confirm", "rejected")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordTransition("start", "ok")
		m.RecordConduct("warning")
		m.RecordCache("hit")
	})
}
