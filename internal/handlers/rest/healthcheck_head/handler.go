package healthcheck_head

import (
	"net/http"
)

// readiness - флаг остановки сервиса (*atomic.Bool из main).
type readiness interface {
	Load() bool
}

// Handler - readiness probe: 204, пока сервис принимает трафик, 503 после начала остановки.
type Handler struct {
	isShuttingDown readiness
}

func New(isShuttingDown readiness) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
