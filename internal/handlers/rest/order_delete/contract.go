//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delete_test
package order_delete

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteOrder(ctx context.Context, id string) error
}
