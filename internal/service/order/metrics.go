package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreateTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_create_total",
			Help: "Total number of order creation attempts by result",
		},
		[]string{"result"},
	)

	// Списания, после которых заказ так и не был создан: позиция k упала и 1..k-1 уже списаны
	// либо все позиции списаны, но заказ не сохранился.
	StockLeakedUnitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_stock_leaked_units_total",
			Help: "Units of stock decremented for orders that failed before being persisted",
		},
	)
)
