package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid order data")
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrOrderNotFound     = errors.New("order not found")
)

// ProductError привязывает ErrProductNotFound / ErrInsufficientStock к конкретному товару.
// errors.Is(err, ErrProductNotFound) работает через Unwrap.
type ProductError struct {
	ProductID   string
	ProductName string
	Err         error
	cause       error
}

func (e *ProductError) Error() string {
	msg := fmt.Sprintf("%s: product %q", e.Err, e.ProductID)
	if e.ProductName != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.ProductName)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

func (e *ProductError) Unwrap() error {
	return e.Err
}
