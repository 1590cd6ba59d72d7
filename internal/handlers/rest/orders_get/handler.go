package orders_get

import (
	"net/http"

	"service/internal/handlers/rest/response"
	"service/pkg/logger"
)

const msgServerError = "Server error"

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
	orders, err := h.service.GetOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("get orders")

		err = response.WriteError(w, http.StatusInternalServerError, msgServerError)
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, response.Orders(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
