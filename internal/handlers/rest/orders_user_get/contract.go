//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_user_get_test
package orders_user_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
}
