package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"unishort/internal/request"
	"unishort/internal/transport"
)

func stubExecutor(fn func(req request.Descriptor) (string, bool)) func(*slog.Logger) transport.Executor {
	return func(*slog.Logger) transport.Executor {
		return transport.ExecutorFunc(func(_ context.Context, req request.Descriptor) (string, bool) {
			return fn(req)
		})
	}
}

func runCLI(args []string, order []string, exec func(*slog.Logger) transport.Executor) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, order, slog.LevelError, exec, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ShortensWithFirstProvider(t *testing.T) {
	exec := stubExecutor(func(req request.Descriptor) (string, bool) {
		if strings.HasPrefix(req.URL, "https://is.gd/") {
			return "https://is.gd/abc", true
		}
		return "", false
	})

	code, out, _ := runCLI([]string{"http://example.com"}, nil, exec)

	assert.Equal(t, 0, code)
	assert.Equal(t, "http://example.com -> https://is.gd/abc (is.gd)\n", out)
}

func TestRun_NamedProvider(t *testing.T) {
	var calls []string
	exec := stubExecutor(func(req request.Descriptor) (string, bool) {
		calls = append(calls, req.URL)
		return "<ShortenedUrl>https://bn.gy/x</ShortenedUrl>", true
	})

	code, out, _ := runCLI([]string{"-provider", "bn.gy", "http://example.com"}, nil, exec)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "https://bn.gy/x (bn.gy)")
	assert.Len(t, calls, 1)
}

func TestRun_ConfiguredOrder(t *testing.T) {
	exec := stubExecutor(func(req request.Descriptor) (string, bool) {
		if strings.HasPrefix(req.URL, "http://v.gd/") {
			return "https://v.gd/q", true
		}
		return "", false
	})

	code, out, _ := runCLI([]string{"http://example.com"}, []string{"hec.su", "v.gd"}, exec)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "(v.gd)")
}

func TestRun_AllProvidersFail(t *testing.T) {
	exec := stubExecutor(func(request.Descriptor) (string, bool) { return "", false })

	code, out, errOut := runCLI([]string{"http://a.example", "http://b.example"}, nil, exec)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "http://a.example: all providers failed")
	assert.Contains(t, errOut, "http://b.example: all providers failed")
}

func TestRun_UnknownProvider(t *testing.T) {
	exec := stubExecutor(func(request.Descriptor) (string, bool) {
		t.Fatal("executor must not be called")
		return "", false
	})

	code, _, errOut := runCLI([]string{"-provider", "bit.ly", "http://a.example", "http://b.example"}, nil, exec)

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, strings.Count(errOut, "unknown provider"))
}

func TestRun_BadOrder(t *testing.T) {
	code, _, errOut := runCLI([]string{"http://a.example"}, []string{"nope"}, stubExecutor(nil))

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown provider")
}

func TestRun_List(t *testing.T) {
	code, out, _ := runCLI([]string{"-list"}, nil, stubExecutor(nil))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, 0, code)
	assert.Len(t, lines, 12)
	assert.Equal(t, " 1  is.gd", lines[0])
	assert.True(t, strings.HasPrefix(lines[11], "12  phx.co.in"))
}

func TestRun_NoArgs(t *testing.T) {
	code, _, errOut := runCLI(nil, nil, stubExecutor(nil))

	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage: unishort")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runCLI([]string{"-nope"}, nil, stubExecutor(nil))
	assert.Equal(t, 2, code)
}
