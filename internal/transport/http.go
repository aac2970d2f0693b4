package transport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"unishort/internal/config"
	"unishort/internal/request"
)

type HTTPExecutor struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

func NewHTTPExecutor(cfg *config.TransportConfig, logger *slog.Logger) *HTTPExecutor {
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        cfg.MaxIdleConns,
			MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
	return NewHTTPExecutorWithClient(client, cfg, logger)
}

// NewHTTPExecutorWithClient uses the given client instead of building one.
// The client's own timeout and transport settings are left untouched.
func NewHTTPExecutorWithClient(client *http.Client, cfg *config.TransportConfig, logger *slog.Logger) *HTTPExecutor {
	return &HTTPExecutor{
		client:       client,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       logger,
	}
}

func (e *HTTPExecutor) Execute(ctx context.Context, req request.Descriptor) (string, bool) {
	httpReq, err := e.newRequest(ctx, req)
	if err != nil {
		e.logger.Debug("failed to build request",
			slog.String("url", req.URL),
			slog.String("error", err.Error()))
		return "", false
	}

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		e.logger.Debug("request failed",
			slog.String("method", httpReq.Method),
			slog.String("host", httpReq.URL.Host),
			slog.String("error", err.Error()))
		return "", false
	}
	defer func() { _ = resp.Body.Close() }()

	var body io.Reader = resp.Body
	if e.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, e.maxBodyBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		e.logger.Debug("failed to read response body",
			slog.String("host", httpReq.URL.Host),
			slog.String("error", err.Error()))
		return "", false
	}

	e.logger.Debug("request completed",
		slog.String("method", httpReq.Method),
		slog.String("host", httpReq.URL.Host),
		slog.Int("status", resp.StatusCode),
		slog.Int("body_bytes", len(data)),
		slog.Duration("duration", time.Since(start)))

	return string(data), true
}

func (e *HTTPExecutor) newRequest(ctx context.Context, req request.Descriptor) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = strings.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), req.URL, body)
	if err != nil {
		return nil, err
	}

	if req.UserAgent != nil {
		httpReq.Header.Set("User-Agent", *req.UserAgent)
	} else if e.userAgent != "" {
		httpReq.Header.Set("User-Agent", e.userAgent)
	}
	if mime := req.ContentType.MIME(); mime != "" {
		httpReq.Header.Set("Content-Type", mime)
	}

	return httpReq, nil
}
