package service

//go:generate go tool mockery

import (
	"context"

	"unishort/internal/metrics"
	"unishort/internal/request"
)

type Executor interface {
	Execute(ctx context.Context, req request.Descriptor) (string, bool)
}

type AttemptRecorder interface {
	RecordAttempt(m metrics.AttemptMetric)
	RecordBusiness(name string, value float64, labels map[string]string)
}
