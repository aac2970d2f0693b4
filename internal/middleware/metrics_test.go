package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"unishort/internal/metrics"
	"unishort/internal/middleware"
	"unishort/internal/middleware/mocks"
)

func captureMetric(t *testing.T) (*mocks.MockHTTPRecorder, *metrics.HTTPMetric) {
	rec := mocks.NewMockHTTPRecorder(t)
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()
	return rec, &captured
}

func TestMetrics_ShortenRequest(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.POST("/api/v1/shorten", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"short_url": "https://is.gd/a"})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shorten", strings.NewReader(`{}`))
	req.RemoteAddr = "192.168.1.1:12345"
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/shorten", captured.Path)
	assert.Equal(t, http.StatusCreated, captured.StatusCode)
	assert.GreaterOrEqual(t, captured.DurationMs, 0.0)
	assert.Equal(t, "192.168.1.1", captured.ClientIP)
	assert.Empty(t, captured.Error)
}

func TestMetrics_HandlerError(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/error", func(c echo.Context) error {
		return errors.New("something went wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "something went wrong", captured.Error)
}

func TestMetrics_HTTPErrorStatus(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/bad-gateway", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream failed")
	})

	req := httptest.NewRequest(http.MethodGet, "/bad-gateway", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.StatusBadGateway, captured.StatusCode)
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, http.StatusNotFound, captured.StatusCode)
}

func TestMetrics_SkipsPaths(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec, "/api/v1/health"))
	e.GET("/api/v1/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	rec.AssertNotCalled(t, "RecordHTTP", mock.Anything)
}

func TestMetrics_PathParameter(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/api/v1/providers/:name", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/is.gd", nil)
	e.ServeHTTP(httptest.NewRecorder(), req)

	// route template, not the concrete value
	assert.Equal(t, "/api/v1/providers/:name", captured.Path)
}
