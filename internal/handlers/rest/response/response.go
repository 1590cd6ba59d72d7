package response

import (
	"encoding/json"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
)

// WriteJSON пишет заголовки и тело. Ошибка кодирования возвращается вызывающему для логирования.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, dto.ErrorResponse{Error: message})
}

func Order(order *entities.Order) dto.Order {
	items := make([]dto.OrderItem, len(order.Items))
	for i, line := range order.Items {
		items[i] = dto.OrderItem{
			ProductId:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price.InexactFloat64(),
		}
	}

	return dto.Order{
		Id:          order.ID,
		UserId:      order.UserID,
		Items:       items,
		TotalAmount: order.TotalAmount.InexactFloat64(),
		Status:      dto.OrderStatus(order.Status),
		CreatedAt:   order.CreatedAt,
	}
}

func Orders(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, len(orders))
	for i := range orders {
		result[i] = Order(&orders[i])
	}
	return result
}
