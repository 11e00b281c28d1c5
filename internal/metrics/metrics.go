// Package metrics exposes prometheus collectors for the solver server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for the solve counter.
const (
	OutcomeSolved       = "solved"
	OutcomeNoSolution   = "no_solution"
	OutcomeInvalidBoard = "invalid_board"
	OutcomeError        = "error"
)

type Metrics struct {
	solves        *prometheus.CounterVec
	solveDuration prometheus.Histogram
	solveNodes    prometheus.Histogram
	generates     prometheus.Counter
	registry      *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sudoku",
			Name:      "solves_total",
			Help:      "Solve requests by outcome.",
		}, []string{"outcome"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudoku",
			Name:      "solve_duration_seconds",
			Help:      "Wall time per solve.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		solveNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sudoku",
			Name:      "solve_nodes",
			Help:      "Search nodes visited per solve.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
		}),
		generates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sudoku",
			Name:      "generates_total",
			Help:      "Generated puzzles.",
		}),
	}
}

func (m *Metrics) ObserveSolve(outcome string, nodes int, dur time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	m.solveDuration.Observe(dur.Seconds())
	m.solveNodes.Observe(float64(nodes))
}

func (m *Metrics) ObserveGenerate() { m.generates.Inc() }

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
