package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"unishort/internal/domain"
	"unishort/internal/metrics"
	"unishort/internal/provider"
	"unishort/internal/shortener"
)

var (
	ErrEmptyURL           = errors.New("url is required")
	ErrAllProvidersFailed = errors.New("all providers failed")
)

// ShortenService asks providers one after another until one returns a short
// URL. Each provider is tried at most once per call.
type ShortenService struct {
	exec     Executor
	order    []provider.Provider
	recorder AttemptRecorder
	logger   *slog.Logger
}

// NewShortenService uses order as the fallback sequence, or the built-in
// ranking when order is empty.
func NewShortenService(exec Executor, order []provider.Provider, recorder AttemptRecorder, logger *slog.Logger) *ShortenService {
	if len(order) == 0 {
		order = provider.Ranked()
	}
	return &ShortenService{
		exec:     exec,
		order:    order,
		recorder: recorder,
		logger:   logger,
	}
}

// Shorten shortens longURL with the named provider, or walks the fallback
// order when providerName is empty.
func (s *ShortenService) Shorten(ctx context.Context, longURL, providerName string) (*domain.ShortenResponse, error) {
	if strings.TrimSpace(longURL) == "" {
		return nil, ErrEmptyURL
	}

	candidates := s.order
	if providerName != "" {
		p, err := provider.Parse(providerName)
		if err != nil {
			return nil, err
		}
		candidates = []provider.Provider{p}
	}

	for _, p := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to shorten url: %w", err)
		}

		shortURL, ok := s.attempt(ctx, p, longURL)
		if !ok {
			continue
		}

		s.recorder.RecordBusiness("shorten_success", 1, map[string]string{"provider": p.Name()})
		return &domain.ShortenResponse{
			ShortURL:    shortURL,
			Provider:    p.Name(),
			OriginalURL: longURL,
		}, nil
	}

	s.recorder.RecordBusiness("shorten_failure", 1, map[string]string{"attempted": strconv.Itoa(len(candidates))})
	return nil, fmt.Errorf("%w: tried %d", ErrAllProvidersFailed, len(candidates))
}

func (s *ShortenService) attempt(ctx context.Context, p provider.Provider, longURL string) (string, bool) {
	start := time.Now()
	shortURL, ok := shortener.Shorten(ctx, p, longURL, s.exec)
	duration := time.Since(start)

	s.recorder.RecordAttempt(metrics.AttemptMetric{
		Time:       start,
		Provider:   p.Name(),
		Success:    ok,
		DurationMs: float64(duration.Microseconds()) / 1000.0,
	})

	if !ok {
		s.logger.Warn("provider returned no short url",
			slog.String("provider", p.Name()),
			slog.Duration("duration", duration))
		return "", false
	}

	s.logger.Debug("provider returned short url",
		slog.String("provider", p.Name()),
		slog.Duration("duration", duration))
	return shortURL, true
}

// Providers lists every provider in ranking order.
func (s *ShortenService) Providers() []domain.ProviderInfo {
	ranked := provider.Ranked()
	out := make([]domain.ProviderInfo, len(ranked))
	for i, p := range ranked {
		out[i] = domain.ProviderInfo{
			Name: p.Name(),
			Rank: i + 1,
			Note: p.Note(),
		}
	}
	return out
}
