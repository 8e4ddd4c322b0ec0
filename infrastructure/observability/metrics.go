// Package observability holds the Prometheus metrics collector for the
// editor's clipboard operations.
package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgerrors "flowpad/pkg/errors"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// Clipboard operation metrics
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Paste volume metrics
	PastedNodes prometheus.Counter
	PastedLinks prometheus.Counter
}

// NewCollector creates a metrics collector with its own registry, so tests
// can build throwaway instances without duplicate registration panics.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clipboard_operations_total",
			Help:      "Total number of clipboard operations",
		},
		[]string{"operation", "status"},
	)

	operationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clipboard_operation_duration_seconds",
			Help:      "Clipboard operation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	pastedNodes := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pasted_nodes_total",
			Help:      "Total number of nodes created by paste operations",
		},
	)

	pastedLinks := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pasted_links_total",
			Help:      "Total number of links created by paste operations",
		},
	)

	registry.MustRegister(operations, operationDuration, pastedNodes, pastedLinks)

	return &Collector{
		registry:          registry,
		Operations:        operations,
		OperationDuration: operationDuration,
		PastedNodes:       pastedNodes,
		PastedLinks:       pastedLinks,
	}
}

// RecordClipboardOperation records the outcome and duration of an operation.
// Failures are labeled with their taxonomy class, so a dashboard can tell
// invariant violations apart from rejected input.
func (c *Collector) RecordClipboardOperation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = strings.ToLower(string(pkgerrors.TypeOf(err)))
	}
	c.Operations.WithLabelValues(operation, status).Inc()
	c.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPaste records how many items a paste materialized
func (c *Collector) RecordPaste(nodes, links int) {
	c.PastedNodes.Add(float64(nodes))
	c.PastedLinks.Add(float64(links))
}

// Handler returns the exposition handler for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
