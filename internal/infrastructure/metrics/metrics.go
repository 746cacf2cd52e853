package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// WorkflowMetrics expõe contadores dos fluxos transacionais
type WorkflowMetrics struct {
	salesCommitted  prometheus.Counter
	saleItems       prometheus.Counter
	mergedEntries   prometheus.Counter
	failures        *prometheus.CounterVec
	workflowSeconds *prometheus.HistogramVec
}

// NewWorkflowMetrics cria e registra as métricas no registerer informado
func NewWorkflowMetrics(reg prometheus.Registerer) *WorkflowMetrics {
	m := &WorkflowMetrics{
		salesCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "sales_committed_total",
			Help:      "Vendas confirmadas com sucesso.",
		}),
		saleItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "sale_items_committed_total",
			Help:      "Itens de venda confirmados.",
		}),
		mergedEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "stock_entries_merged_total",
			Help:      "Entradas provisórias aplicadas ao catálogo.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pos",
			Name:      "workflow_failures_total",
			Help:      "Falhas dos fluxos por classe e etapa.",
		}, []string{"workflow", "class", "step"}),
		workflowSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pos",
			Name:      "workflow_duration_seconds",
			Help:      "Duração dos fluxos transacionais.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"workflow", "outcome"}),
	}

	reg.MustRegister(m.salesCommitted, m.saleItems, m.mergedEntries, m.failures, m.workflowSeconds)
	return m
}

// SaleCommitted registra uma venda confirmada
func (m *WorkflowMetrics) SaleCommitted(items int, elapsed time.Duration) {
	m.salesCommitted.Inc()
	m.saleItems.Add(float64(items))
	m.workflowSeconds.WithLabelValues("sale_commit", "success").Observe(elapsed.Seconds())
}

// StockMerged registra uma finalização de estoque
func (m *WorkflowMetrics) StockMerged(entries int, elapsed time.Duration) {
	m.mergedEntries.Add(float64(entries))
	m.workflowSeconds.WithLabelValues("stock_merge", "success").Observe(elapsed.Seconds())
}

// WorkflowFailed registra uma falha de fluxo
func (m *WorkflowMetrics) WorkflowFailed(workflow, class, step string, elapsed time.Duration) {
	m.failures.WithLabelValues(workflow, class, step).Inc()
	m.workflowSeconds.WithLabelValues(workflow, "failure").Observe(elapsed.Seconds())
}
