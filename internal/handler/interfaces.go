package handler

import (
	"context"

	"unishort/internal/domain"
)

//go:generate go tool mockery

type ShortenService interface {
	Shorten(ctx context.Context, longURL, providerName string) (*domain.ShortenResponse, error)
	Providers() []domain.ProviderInfo
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
