package order_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/response"
	"service/internal/service/order"
	"service/pkg/logger"
)

const (
	msgDeleted     = "Order cancelled successfully"
	msgNotFound    = "Order not found"
	msgServerError = "Server error"
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

// ServeHTTP удаляет заказ физически. Остатки товаров при этом не возвращаются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			err = response.WriteError(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("delete order")
			err = response.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, dto.MessageResponse{Message: msgDeleted})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
