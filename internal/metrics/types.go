package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	ClientIP   string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

// AttemptMetric is one call to a shortening provider.
type AttemptMetric struct {
	Time       time.Time
	Provider   string
	Success    bool
	DurationMs float64
}
