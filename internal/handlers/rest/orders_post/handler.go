package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/response"
	"service/internal/service/order"
	"service/pkg/logger"
)

const (
	msgCreated           = "Order created successfully"
	msgInvalidInput      = "Invalid order data"
	msgUserNotFound      = "User not found"
	msgProductNotFound   = "Product not found: "
	msgInsufficientStock = "Insufficient stock for product: "
	msgServerError       = "Server error"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var createOrderDTO dto.CreateOrderRequest
	err := json.NewDecoder(r.Body).Decode(&createOrderDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidInput)
		return
	}

	items := make([]entities.OrderItemRequest, len(createOrderDTO.Items))
	for i, item := range createOrderDTO.Items {
		items[i] = entities.OrderItemRequest{
			ProductID: item.ProductId,
			Quantity:  item.Quantity,
		}
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), createOrderDTO.UserId, items)
	if err != nil {
		var productErr *order.ProductError
		switch {
		case errors.Is(err, order.ErrInvalidInput):
			h.writeError(w, http.StatusBadRequest, msgInvalidInput)
		case errors.Is(err, order.ErrUserNotFound):
			h.writeError(w, http.StatusNotFound, msgUserNotFound)
		case errors.As(err, &productErr) && errors.Is(err, order.ErrInsufficientStock):
			h.writeError(w, http.StatusBadRequest, msgInsufficientStock+productErr.ProductName)
		case errors.As(err, &productErr) && errors.Is(err, order.ErrProductNotFound):
			h.writeError(w, http.StatusNotFound, msgProductNotFound+productErr.ProductID)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			h.writeError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	res := dto.OrderMessageResponse{
		Message: msgCreated,
		Order:   response.Order(orderEntity),
	}

	err = response.WriteJSON(w, http.StatusCreated, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, message string) {
	err := response.WriteError(w, code, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
