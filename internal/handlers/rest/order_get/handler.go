package order_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/handlers/rest/response"
	"service/internal/service/order"
	"service/pkg/logger"
)

const (
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			err = response.WriteError(w, http.StatusNotFound, msgNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order", id),
			).Error("get order")
			err = response.WriteError(w, http.StatusInternalServerError, msgServerError)
		}
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.Order(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
