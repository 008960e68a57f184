// Package metrics exposes Prometheus collectors for split runs.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/Flarenzy/subnetsplit/internal/domain"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "subnetsplit"

type Metrics struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	subnets  prometheus.Counter
	rejected prometheus.Counter
	duration prometheus.Histogram
}

// New registers the collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Split runs by outcome.",
		}, []string{"outcome"}),
		subnets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subnets_emitted_total",
			Help:      "Deduplicated subnets produced by successful runs.",
		}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_rejected_total",
			Help:      "Input lines discarded by validation.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Time spent splitting and aggregating.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observe(result domain.SplitResult, err error, elapsed time.Duration) {
	m.duration.Observe(elapsed.Seconds())
	if err != nil {
		m.runs.WithLabelValues("error").Inc()
		return
	}
	m.runs.WithLabelValues("ok").Inc()
	m.subnets.Add(float64(len(result.Subnets)))
	m.rejected.Add(float64(result.Rejected))
}

type instrumentedSplitService struct {
	metrics *Metrics
	next    domain.SplitService
}

// InstrumentSplitService records every Split call on m.
func InstrumentSplitService(m *Metrics, next domain.SplitService) domain.SplitService {
	if m == nil || next == nil {
		return next
	}
	return &instrumentedSplitService{metrics: m, next: next}
}

func (s *instrumentedSplitService) Split(ctx context.Context, input domain.SplitInput) (domain.SplitResult, error) {
	start := time.Now()
	result, err := s.next.Split(ctx, input)
	s.metrics.observe(result, err, time.Since(start))
	return result, err
}

func (s *instrumentedSplitService) GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	return s.next.GetRun(ctx, id)
}
