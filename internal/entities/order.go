package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string
	UserID      string
	Items       []OrderLine
	TotalAmount decimal.Decimal
	Status      OrderStatusType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderLine - снимок товара на момент заказа, позже не синхронизируется с product-service.
type OrderLine struct {
	ProductID   string
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// OrderItemRequest - одна позиция из запроса на создание заказа.
type OrderItemRequest struct {
	ProductID string
	Quantity  int64
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderShipped   OrderStatusType = "shipped"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

var orderStatuses = []OrderStatusType{
	OrderPending,
	OrderConfirmed,
	OrderShipped,
	OrderDelivered,
	OrderCancelled,
}

// OrderStatuses возвращает все допустимые статусы в каноническом порядке.
func OrderStatuses() []OrderStatusType {
	out := make([]OrderStatusType, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func ParseOrderStatus(s string) (OrderStatusType, bool) {
	status := OrderStatusType(s)
	if !status.IsValid() {
		return "", false
	}
	return status, true
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) String() string {
	return string(s)
}
