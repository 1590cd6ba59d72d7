//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

// UserGateway возвращает nil, если пользователь существует.
type UserGateway interface {
	UserExists(ctx context.Context, userID string) error
}

type ProductGateway interface {
	GetProduct(ctx context.Context, productID string) (*entities.Product, error)
	DecrementStock(ctx context.Context, productID string, quantity int64) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
