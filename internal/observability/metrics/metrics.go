// Package metrics defines the metric recorders used by the application
// services together with Prometheus and no-op implementations.
package metrics

import (
	"context"
	"time"
)

// OperationMetrics records the lifecycle of a service operation.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

// SimulationMetrics records match simulation outcomes.
type SimulationMetrics interface {
	RecordMatchSimulated(ctx context.Context, decidedBy string)
	RecordGoals(ctx context.Context, goals int)
	RecordShootout(ctx context.Context, kicks int)
	RecordCommentaryFallback(ctx context.Context, reason string)
}

// NotificationMetrics records outbound notification deliveries.
type NotificationMetrics interface {
	RecordNotification(ctx context.Context, kind, outcome string)
}

// Recorder is the union of every recorder, implemented by Prometheus and Noop.
type Recorder interface {
	OperationMetrics
	SimulationMetrics
	NotificationMetrics
}
