package health_get

import (
	"net/http"
	"time"

	"service/internal/generated/dto"
	"service/internal/handlers/rest/response"
	"service/pkg/logger"
)

const (
	serviceName = "order-service"

	statusHealthy      = "healthy"
	statusShuttingDown = "shutting_down"
)

type Handler struct {
	log       handlerLogger
	readiness readiness
	now       func() time.Time
}

func New(log handlerLogger, readiness readiness) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		readiness: readiness,
		now:       time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := http.StatusOK
	res := dto.HealthResponse{
		Status:    statusHealthy,
		Service:   serviceName,
		Timestamp: h.now().UTC(),
	}

	if h.readiness.Load() {
		code = http.StatusServiceUnavailable
		res.Status = statusShuttingDown
	}

	err := response.WriteJSON(w, code, res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
