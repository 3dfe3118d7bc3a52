package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "anleague"

// Prometheus records measurements as Prometheus collectors.
type Prometheus struct {
	operationAttempts  *prometheus.CounterVec
	operationSuccesses *prometheus.CounterVec
	operationFailures  *prometheus.CounterVec
	operationDuration  *prometheus.HistogramVec
	matchesSimulated   *prometheus.CounterVec
	goals              prometheus.Histogram
	shootoutKicks      prometheus.Histogram
	commentaryFallback *prometheus.CounterVec
	notifications      *prometheus.CounterVec
}

// NewPrometheus creates the collectors and registers them on reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Service operations started.",
		}, []string{"service", "operation"}),
		operationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Service operations that completed without an infrastructure error.",
		}, []string{"service", "operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Service operations that failed with an infrastructure error or panic.",
		}, []string{"service", "operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Service operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "operation"}),
		matchesSimulated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_simulated_total",
			Help:      "Simulated matches by the phase that decided them.",
		}, []string{"decided_by"}),
		goals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_goals",
			Help:      "Total goals per simulated match.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 8, 10},
		}),
		shootoutKicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shootout_kicks",
			Help:      "Kicks per side taken in penalty shootouts.",
			Buckets:   []float64{5, 6, 7, 8, 10, 12},
		}),
		commentaryFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commentary_fallback_total",
			Help:      "Matches whose commentary was synthesized locally.",
		}, []string{"reason"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification deliveries by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	for _, c := range []prometheus.Collector{
		p.operationAttempts, p.operationSuccesses, p.operationFailures, p.operationDuration,
		p.matchesSimulated, p.goals, p.shootoutKicks, p.commentaryFallback, p.notifications,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Prometheus) RecordOperationAttempt(_ context.Context, operation, service string) {
	p.operationAttempts.WithLabelValues(service, operation).Inc()
}

func (p *Prometheus) RecordOperationSuccess(_ context.Context, operation, service string) {
	p.operationSuccesses.WithLabelValues(service, operation).Inc()
}

func (p *Prometheus) RecordOperationFailure(_ context.Context, operation, service string) {
	p.operationFailures.WithLabelValues(service, operation).Inc()
}

func (p *Prometheus) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	p.operationDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

func (p *Prometheus) RecordMatchSimulated(_ context.Context, decidedBy string) {
	p.matchesSimulated.WithLabelValues(decidedBy).Inc()
}

func (p *Prometheus) RecordGoals(_ context.Context, goals int) {
	p.goals.Observe(float64(goals))
}

func (p *Prometheus) RecordShootout(_ context.Context, kicks int) {
	p.shootoutKicks.Observe(float64(kicks))
}

func (p *Prometheus) RecordCommentaryFallback(_ context.Context, reason string) {
	p.commentaryFallback.WithLabelValues(reason).Inc()
}

func (p *Prometheus) RecordNotification(_ context.Context, kind, outcome string) {
	p.notifications.WithLabelValues(kind, outcome).Inc()
}

var _ Recorder = (*Prometheus)(nil)
