package order

import (
	"service/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	lines := make([]entities.OrderLine, len(items))
	for i, item := range items {
		lines[i] = entities.OrderLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	return &entities.Order{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       lines,
		TotalAmount: o.TotalAmount,
		Status:      entities.OrderStatusType(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromDomain(order *entities.Order) (*OrderDB, []OrderItemDB) {
	if order == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	items := make([]OrderItemDB, len(order.Items))
	for i, line := range order.Items {
		items[i] = OrderItemDB{
			OrderID:     order.ID,
			Position:    i,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
		}
	}

	return orderDB, items
}

// ToDomainList собирает заказы в порядке orders, позиции берутся из itemsByOrder.
func ToDomainList(orders []OrderDB, itemsByOrder map[string][]OrderItemDB) []entities.Order {
	if len(orders) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(orders))
	for i, orderDB := range orders {
		result[i] = *ToDomain(&orderDB, itemsByOrder[orderDB.ID])
	}
	return result
}
