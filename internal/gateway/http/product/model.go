package product

import "github.com/shopspring/decimal"

type productResponse struct {
	ID    string          `json:"_id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int64           `json:"stock"`
}

func (r *productResponse) empty() bool {
	return r.ID == "" && r.Name == ""
}

type stockRequest struct {
	Quantity int64 `json:"quantity"`
}
