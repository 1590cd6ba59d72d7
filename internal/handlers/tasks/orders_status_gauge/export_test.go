package orders_status_gauge

import (
	"time"

	"service/pkg/logger"
)

type GaugeSetter = gaugeSetter

func NewOrdersStatusGaugeWithSetter(log logger.Logger, service Service, interval time.Duration, gauge GaugeSetter) *OrdersStatusGauge {
	return newOrdersStatusGauge(log, service, interval, gauge)
}
