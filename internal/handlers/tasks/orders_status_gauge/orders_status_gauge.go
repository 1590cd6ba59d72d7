package orders_status_gauge

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

type OrdersStatusGauge struct {
	log      logger.Logger
	service  Service
	gauge    gaugeSetter
	interval time.Duration
}

type gaugeSetter interface {
	Set(status string, value float64)
}

type promGauge struct{}

func (promGauge) Set(status string, value float64) {
	OrdersByStatus.WithLabelValues(status).Set(value)
}

func NewOrdersStatusGauge(log logger.Logger, service Service, interval time.Duration) *OrdersStatusGauge {
	return newOrdersStatusGauge(log, service, interval, promGauge{})
}

func newOrdersStatusGauge(log logger.Logger, service Service, interval time.Duration, gauge gaugeSetter) *OrdersStatusGauge {
	return &OrdersStatusGauge{
		log:      log,
		service:  service,
		gauge:    gauge,
		interval: interval,
	}
}

func (o *OrdersStatusGauge) TTL() time.Duration {
	return o.interval
}

// Do выставляет значение для каждого статуса, отсутствующие в БД статусы получают 0.
func (o *OrdersStatusGauge) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count orders by status: %w", err)
	}

	var total int64
	for _, status := range entities.OrderStatuses() {
		count := counts[status]
		total += count
		o.gauge.Set(status.String(), float64(count))
	}

	o.log.With(
		logger.NewField("orders_total", total),
	).Info("orders status gauge refreshed")

	return nil
}

func (o *OrdersStatusGauge) Info() string {
	return "orders status gauge"
}
