package metrics

import (
	"context"
	"time"
)

// Noop discards every measurement.
type Noop struct{}

// NewNoop returns a recorder that does nothing.
func NewNoop() *Noop { return &Noop{} }

func (*Noop) RecordOperationAttempt(context.Context, string, string)                 {}
func (*Noop) RecordOperationSuccess(context.Context, string, string)                 {}
func (*Noop) RecordOperationFailure(context.Context, string, string)                 {}
func (*Noop) RecordOperationDuration(context.Context, string, string, time.Duration) {}
func (*Noop) RecordMatchSimulated(context.Context, string)                           {}
func (*Noop) RecordGoals(context.Context, int)                                       {}
func (*Noop) RecordShootout(context.Context, int)                                    {}
func (*Noop) RecordCommentaryFallback(context.Context, string)                       {}
func (*Noop) RecordNotification(context.Context, string, string)                     {}

var _ Recorder = (*Noop)(nil)
