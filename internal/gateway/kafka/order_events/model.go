package order_events

import "time"

// orderEventMessage - тело сообщения в KAFKA_TOPIC. Пустые user_id и deleted не сериализуются.
type orderEventMessage struct {
	OrderID    string    `json:"order_id"`
	UserID     *string   `json:"user_id,omitempty"`
	Status     string    `json:"status"`
	Deleted    *bool     `json:"deleted,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
