package order

import (
	"strings"

	"service/internal/entities"
)

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func isValidItem(item entities.OrderItemRequest) bool {
	return strings.TrimSpace(item.ProductID) != "" && item.Quantity > 0
}

func isValidItems(items []entities.OrderItemRequest) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !isValidItem(item) {
			return false
		}
	}
	return true
}
