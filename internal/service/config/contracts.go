package config

import (
	"context"

	"github.com/polishnail/salon-booking-service/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации салона
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.StoreConfig, error)
	Replace(ctx context.Context, cfg *domain.StoreConfig) (*domain.StoreConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
