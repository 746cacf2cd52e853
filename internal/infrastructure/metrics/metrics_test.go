package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWorkflowMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWorkflowMetrics(reg)

	m.SaleCommitted(3, 10*time.Millisecond)
	m.SaleCommitted(0, 5*time.Millisecond)
	m.StockMerged(4, time.Millisecond)
	m.WorkflowFailed("sale_commit", "storage", "stock_update", time.Millisecond)
	m.WorkflowFailed("sale_commit", "storage", "stock_update", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.salesCommitted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.saleItems))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.mergedEntries))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.failures.WithLabelValues("sale_commit", "storage", "stock_update")))
	// sale_commit/success, stock_merge/success, sale_commit/failure
	assert.Equal(t, 3, testutil.CollectAndCount(m.workflowSeconds))
}

func TestNewWorkflowMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewWorkflowMetrics(reg)

	assert.Panics(t, func() { NewWorkflowMetrics(reg) })
}
