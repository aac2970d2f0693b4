// Command unishort shortens URLs from the command line.
//
//	unishort [-provider name] [-v] URL...
//	unishort -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"unishort/internal/config"
	"unishort/internal/metrics"
	"unishort/internal/provider"
	"unishort/internal/service"
	"unishort/internal/transport"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}

	exec := func(logger *slog.Logger) transport.Executor {
		return transport.NewHTTPExecutor(&cfg.Transport, logger)
	}

	os.Exit(run(ctx, os.Args[1:], cfg.Shortener.Providers, cfg.Log.Level, exec, os.Stdout, os.Stderr))
}

func run(
	ctx context.Context,
	args []string,
	order []string,
	level slog.Level,
	newExecutor func(*slog.Logger) transport.Executor,
	stdout, stderr io.Writer,
) int {
	fs := flag.NewFlagSet("unishort", flag.ContinueOnError)
	fs.SetOutput(stderr)
	providerName := fs.String("provider", "", "shorten with this provider only")
	list := fs.Bool("list", false, "list providers in fallback order and exit")
	verbose := fs.Bool("v", false, "log every provider attempt")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: unishort [-provider name] [-v] URL...")
		fmt.Fprintln(stderr, "       unishort -list")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	providers, err := provider.ParseList(order)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// the CLI never writes metrics
	recorder := metrics.NewRecorder(nil, &config.MetricsConfig{}, logger)
	svc := service.NewShortenService(newExecutor(logger), providers, recorder, logger)

	if *list {
		for _, p := range svc.Providers() {
			if p.Note != "" {
				fmt.Fprintf(stdout, "%2d  %-12s %s\n", p.Rank, p.Name, p.Note)
				continue
			}
			fmt.Fprintf(stdout, "%2d  %s\n", p.Rank, p.Name)
		}
		return 0
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	code := 0
	for _, longURL := range fs.Args() {
		resp, err := svc.Shorten(ctx, longURL, *providerName)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", longURL, err)
			code = 1
			if errors.Is(err, provider.ErrUnknownProvider) || ctx.Err() != nil {
				return code
			}
			continue
		}
		fmt.Fprintf(stdout, "%s -> %s (%s)\n", resp.OriginalURL, resp.ShortURL, resp.Provider)
	}
	return code
}
