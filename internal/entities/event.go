package entities

import "time"

// OrderEvent публикуется после создания заказа, смены статуса и удаления.
type OrderEvent struct {
	OrderID    string
	UserID     string
	Status     OrderStatusType
	Deleted    bool
	OccurredAt time.Time
}
