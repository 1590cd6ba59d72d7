package retrier

import (
	"context"
	"time"
)

// Retrier используется только при старте: ожидание Postgres и Kafka.
// Запросы к user-service и product-service не ретраятся.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается после каждой неудачной попытки, next - пауза до следующей.
type NotifyFunc func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	OnRetry NotifyFunc
}

// StartupConfig - параметры ожидания зависимостей при старте сервиса.
func StartupConfig() Config {
	return Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

// WithOnRetry возвращает копию конфига с хуком на неудачную попытку.
func (c Config) WithOnRetry(fn NotifyFunc) Config {
	c.OnRetry = fn
	return c
}
