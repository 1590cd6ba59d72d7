package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"service/pkg/retrier"
)

type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

// ExecuteWithContext повторяет fn с экспоненциальной задержкой, пока fn не вернет nil,
// ошибка не станет постоянной (ShouldRetry == false) или не истечет MaxElapsedTime/ctx.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)

	operation := func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		if r.config.OnRetry != nil {
			r.config.OnRetry(err, next)
		}
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
