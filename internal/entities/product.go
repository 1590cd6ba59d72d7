package entities

import "github.com/shopspring/decimal"

// Product - представление товара из product-service.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int64
}
