// Package testutil holds helpers shared by tests across packages. Not for
// production use.
package testutil

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// CounterValue reads the current value of a counter.
func CounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

// CounterVecValue reads the current value of one labeled series of a
// counter vector. Unseen label combinations read as zero.
func CounterVecValue(t *testing.T, cv *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()

	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to resolve counter labels %v: %v", labels, err)
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

// HistogramSampleCount reads how many observations one labeled series of a
// histogram vector has recorded.
func HistogramSampleCount(t *testing.T, hv *prometheus.HistogramVec, labels ...string) uint64 {
	t.Helper()

	h, err := hv.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to resolve histogram labels %v: %v", labels, err)
	}
	var m dto.Metric
	if err := h.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to read histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
