package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"unishort/internal/config"
	"unishort/internal/handler"
	"unishort/internal/metrics"
	custommiddleware "unishort/internal/middleware"
	"unishort/internal/provider"
	"unishort/internal/repository"
	"unishort/internal/service"
	"unishort/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.Level}))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	order, err := provider.ParseList(cfg.Shortener.Providers)
	if err != nil {
		return fmt.Errorf("failed to parse provider order: %w", err)
	}

	var sink metrics.Sink
	if cfg.Metrics.Enabled {
		store, err := repository.NewMetricsStore(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to create metrics store: %w", err)
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure metrics schema: %w", err)
		}
		sink = store.Pool()
	}

	recorder := metrics.NewRecorder(sink, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	exec := transport.NewHTTPExecutor(&cfg.Transport, logger)
	shortenService := service.NewShortenService(exec, order, recorder, logger)
	h := handler.New(shortenService, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(custommiddleware.Metrics(recorder, "/api/v1/health"))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	servers := make([]*http.Server, 0, 2)
	g, gctx := errgroup.WithContext(ctx)

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	httpServer := newServer(e)
	servers = append(servers, httpServer)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.Int("providers", len(shortenService.Providers())))
	g.Go(func() error { return serve(httpServer, httpListener) })

	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		tlsListener, err := listenTLS(httpsAddr, &cfg.TLS, cfg.Server.MaxConnections)
		if err != nil {
			_ = httpListener.Close()
			return err
		}
		httpsServer := newServer(e)
		servers = append(servers, httpsServer)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))
		g.Go(func() error { return serve(httpsServer, tlsListener) })
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
		}
		return nil
	})

	return g.Wait()
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:     h,
		ReadTimeout: 5 * time.Second,
		// a fallback walk may call several providers in a row
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener) error {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func listenTLS(addr string, cfg *config.TLSConfig, maxConns int) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	l, err := listen(addr, maxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}

	return tls.NewListener(l, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	}), nil
}
