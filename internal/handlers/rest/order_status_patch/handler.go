package order_status_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/handlers/rest/response"
	"service/internal/service/order"
	"service/pkg/logger"
)

const (
	msgUpdated       = "Order status updated successfully"
	msgInvalidStatus = "Invalid status"
	msgNotFound      = "Order not found"
	msgServerError   = "Server error"
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
	id := mux.Vars(r)["id"]

	var statusDTO dto.UpdateOrderStatusRequest
	err := json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	status, ok := entities.ParseOrderStatus(statusDTO.Status)
	if !ok {
		h.writeError(w, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			h.writeError(w, http.StatusBadRequest, msgInvalidStatus)
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("update order status")
			h.writeError(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	res := dto.OrderMessageResponse{
		Message: msgUpdated,
		Order:   response.Order(orderEntity),
	}

	err = response.WriteJSON(w, http.StatusOK, res)
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
