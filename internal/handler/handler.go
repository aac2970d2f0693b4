package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"unishort/internal/domain"
	"unishort/internal/provider"
	"unishort/internal/service"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errURLRequired     = map[string]string{"error": "url is required"}
	errUnknownProvider = map[string]string{"error": "unknown provider"}
	errNoShortURL      = map[string]string{"error": "no provider returned a short url"}
	errShortenFailed   = map[string]string{"error": "failed to shorten url"}
	respHealthOK       = map[string]string{"status": "ok"}
)

type Handler struct {
	shortenService ShortenService
	logger         *slog.Logger
	recorder       BusinessRecorder
}

func New(shortenService ShortenService, logger *slog.Logger, recorder BusinessRecorder) *Handler {
	return &Handler{
		shortenService: shortenService,
		logger:         logger,
		recorder:       recorder,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.GET("/providers", h.Providers)
	api.POST("/shorten", h.Shorten)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Providers(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.ProvidersResponse{Providers: h.shortenService.Providers()})
}

func (h *Handler) Shorten(c echo.Context) error {
	var req domain.ShortenRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	h.recorder.RecordBusiness("shorten_requests", 1, map[string]string{
		"client_ip": c.RealIP(),
		"referrer":  extractDomain(c.Request().Referer()),
	})

	resp, err := h.shortenService.Shorten(c.Request().Context(), req.URL, req.Provider)
	if err != nil {
		return h.handleShortenError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) handleShortenError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyURL):
		return c.JSON(http.StatusBadRequest, errURLRequired)
	case errors.Is(err, provider.ErrUnknownProvider):
		return c.JSON(http.StatusBadRequest, errUnknownProvider)
	case errors.Is(err, service.ErrAllProvidersFailed):
		h.logger.Warn("no provider returned a short url", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadGateway, errNoShortURL)
	default:
		h.logger.Error("failed to shorten url", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errShortenFailed)
	}
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}
