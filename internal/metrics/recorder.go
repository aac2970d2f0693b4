package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"unishort/internal/config"
)

// Sink bulk-loads rows into a table. *pgxpool.Pool satisfies it.
type Sink interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// batch buffers metrics of one kind and knows how to turn them into rows of
// its table.
type batch[T any] struct {
	kind    string
	table   string
	columns []string
	ch      chan T
	row     func(T) []any
}

func newBatch[T any](kind, table string, columns []string, size int, row func(T) []any) *batch[T] {
	return &batch[T]{kind: kind, table: table, columns: columns, ch: make(chan T, size), row: row}
}

// Recorder buffers metrics in memory and writes them to the sink in batches
// from background goroutines. Record calls never block: when a buffer is full
// the metric is dropped.
type Recorder struct {
	sink         Sink
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *batch[HTTPMetric]
	business     *batch[BusinessMetric]
	attempts     *batch[AttemptMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(sink Sink, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:   sink,
		logger: logger,
		cfg:    cfg,
		http: newBatch("http", "http_metrics",
			[]string{"time", "method", "path", "status_code", "duration_ms", "client_ip", "error"},
			cfg.BufferSize,
			func(m HTTPMetric) []any {
				return []any{m.Time, m.Method, m.Path, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
			}),
		business: newBatch("business", "business_metrics",
			[]string{"time", "metric_name", "value", "labels"},
			cfg.BufferSize,
			func(m BusinessMetric) []any {
				labelsJSON, _ := json.Marshal(m.Labels)
				return []any{m.Time, m.MetricName, m.Value, labelsJSON}
			}),
		attempts: newBatch("attempt", "shorten_attempts",
			[]string{"time", "provider", "success", "duration_ms"},
			cfg.BufferSize,
			func(m AttemptMetric) []any {
				return []any{m.Time, m.Provider, m.Success, m.DurationMs}
			}),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	record(r, r.http, m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	record(r, r.business, BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordAttempt(m AttemptMetric) {
	record(r, r.attempts, m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.cfg.Enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	interval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go flushLoop(ctx, r, r.http, interval)
	go flushLoop(ctx, r, r.business, interval)
	go flushLoop(ctx, r, r.attempts, interval)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flushers after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func record[T any](r *Recorder, b *batch[T], m T) {
	if !r.cfg.Enabled {
		return
	}
	select {
	case b.ch <- m:
	default:
		r.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", b.kind))
	}
}

func flushLoop[T any](ctx context.Context, r *Recorder, b *batch[T], interval time.Duration) {
	defer r.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pending := make([]T, 0, r.cfg.BufferSize)

	for {
		select {
		case <-ctx.Done():
			drainAndWrite(r, b, pending)
			return
		case <-r.shutdownCh:
			drainAndWrite(r, b, pending)
			return
		case m := <-b.ch:
			pending = append(pending, m)
			if len(pending) >= r.cfg.FlushThreshold {
				write(ctx, r, b, pending)
				pending = pending[:0]
			}
		case <-ticker.C:
			if len(pending) > 0 {
				write(ctx, r, b, pending)
				pending = pending[:0]
			}
		}
	}
}

func drainAndWrite[T any](r *Recorder, b *batch[T], pending []T) {
	for {
		select {
		case m := <-b.ch:
			pending = append(pending, m)
		default:
			if len(pending) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				write(ctx, r, b, pending)
				cancel()
			}
			return
		}
	}
}

func write[T any](ctx context.Context, r *Recorder, b *batch[T], pending []T) {
	if len(pending) == 0 {
		return
	}

	rows := make([][]any, len(pending))
	for i, m := range pending {
		rows[i] = b.row(m)
	}

	_, err := r.sink.CopyFrom(ctx, pgx.Identifier{b.table}, b.columns, pgx.CopyFromRows(rows))
	if err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("kind", b.kind),
			slog.Int("rows", len(rows)),
			slog.String("error", err.Error()))
	}
}
