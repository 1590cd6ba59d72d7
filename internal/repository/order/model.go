package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID          string
	UserID      string
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type OrderItemDB struct {
	OrderID     string
	Position    int
	ProductID   string
	ProductName string
	Quantity    int64
	Price       decimal.Decimal
}
