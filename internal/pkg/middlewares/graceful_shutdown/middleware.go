package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"Service is shutting down"}`

// Middleware отклоняет новые запросы 503, когда ongoingCtx отменен и флаг остановки выставлен.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(shuttingDownBody))
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
