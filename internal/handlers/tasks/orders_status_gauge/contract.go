//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_status_gauge_test
package orders_status_gauge

import (
	"context"

	"service/internal/entities"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}
