package orders_user_get

import (
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP не проверяет существование пользователя: неизвестный userId дает пустой список.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	orders, err := h.service.GetOrdersByUser(r.Context(), userID)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("user", userID),
		).Error("get user orders")

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
