package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"service/internal/entities"
	"service/pkg/logger"
)

const (
	resultCreated = "created"
	resultFailed  = "failed"
)

type Service struct {
	log            serviceLogger
	repository     Repository
	userGateway    UserGateway
	productGateway ProductGateway
	publisher      EventPublisher
	now            func() time.Time
}

func New(
	log serviceLogger,
	repository Repository,
	userGateway UserGateway,
	productGateway ProductGateway,
	publisher EventPublisher,
) *Service {
	return &Service{
		log:            log.With(logger.NewField("component", "order-service")),
		repository:     repository,
		userGateway:    userGateway,
		productGateway: productGateway,
		publisher:      publisher,
		now:            time.Now,
	}
}

// CreateOrder проверяет пользователя, затем последовательно, в порядке запроса,
// для каждой позиции получает товар, проверяет остаток и списывает его.
//
// Списания не компенсируются: если позиция k падает, остатки позиций 1..k-1
// уже уменьшены, а заказ не создается. Проверка остатка и списание не атомарны
// относительно параллельных запросов на тот же товар.
func (s *Service) CreateOrder(ctx context.Context, userID string, items []entities.OrderItemRequest) (*entities.Order, error) {
	order, err := s.createOrder(ctx, userID, items)
	if err != nil {
		OrdersCreateTotal.WithLabelValues(resultFailed).Inc()
		return nil, err
	}
	OrdersCreateTotal.WithLabelValues(resultCreated).Inc()

	s.publish(ctx, entities.OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
	})
	return order, nil
}

func (s *Service) createOrder(ctx context.Context, userID string, items []entities.OrderItemRequest) (*entities.Order, error) {
	if !isValidUserID(userID) || !isValidItems(items) {
		return nil, ErrInvalidInput
	}

	// "не существует" и "не удалось проверить" для вызывающего одно и то же
	err := s.userGateway.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUserNotFound, userID, err)
	}

	lines := make([]entities.OrderLine, 0, len(items))
	totalAmount := decimal.Zero
	var reserved int64

	for _, item := range items {
		line, err := s.reserveItem(ctx, item)
		if err != nil {
			if reserved > 0 {
				StockLeakedUnitsTotal.Add(float64(reserved))
			}
			return nil, err
		}
		reserved += line.Quantity

		lines = append(lines, *line)
		totalAmount = totalAmount.Add(line.Subtotal())
	}

	order, err := s.repository.Create(ctx, entities.Order{
		UserID:      userID,
		Items:       lines,
		TotalAmount: totalAmount,
		Status:      entities.DefaultOrderStatus,
	})
	if err != nil {
		// весь списанный сток остался без заказа
		StockLeakedUnitsTotal.Add(float64(reserved))
		s.log.Error("order not saved after stock decrement",
			logger.NewField("user", userID),
			logger.NewField("leaked_units", reserved),
			logger.NewField("error", err),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (s *Service) reserveItem(ctx context.Context, item entities.OrderItemRequest) (*entities.OrderLine, error) {
	product, err := s.productGateway.GetProduct(ctx, item.ProductID)
	if err != nil {
		return nil, &ProductError{
			ProductID: item.ProductID,
			Err:       ErrProductNotFound,
			cause:     err,
		}
	}

	if product.Stock < item.Quantity {
		return nil, &ProductError{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Err:         ErrInsufficientStock,
		}
	}

	err = s.productGateway.DecrementStock(ctx, item.ProductID, item.Quantity)
	if err != nil {
		return nil, &ProductError{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Err:         ErrProductNotFound,
			cause:       err,
		}
	}

	productID := product.ID
	if productID == "" {
		productID = item.ProductID
	}

	return &entities.OrderLine{
		ProductID:   productID,
		ProductName: product.Name,
		Quantity:    item.Quantity,
		Price:       product.Price,
	}, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Service) GetOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	orders, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus перезаписывает статус без проверки переходов: допустим любой статус из набора.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatusType) (*entities.Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.publish(ctx, entities.OrderEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Status:  order.Status,
	})
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.publish(ctx, entities.OrderEvent{
		OrderID: id,
		Status:  entities.OrderCancelled,
		Deleted: true,
	})
	return nil
}

func (s *Service) CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}

	return counts, nil
}

// publish - best effort: ошибка публикации не влияет на результат операции.
func (s *Service) publish(ctx context.Context, event entities.OrderEvent) {
	event.OccurredAt = s.now().UTC()

	err := s.publisher.Publish(ctx, event)
	if err != nil {
		s.log.Warn("failed to publish order event",
			logger.NewField("order", event.OrderID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("error", err),
		)
	}
}
