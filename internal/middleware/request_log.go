package middleware

import (
	"errors"
	"net/http"
	"time"

	"animal-shelter/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var errPanic = errors.New("panic")

// RequestLogger deja en el contexto un logger con request_id y registra
// método, ruta, status y duración al terminar.
// Debe ir después de chimw.RequestID.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLog := log.With(logger.Fields{"request_id": chimw.GetReqID(r.Context())})
			ctx := logger.WithContext(r.Context(), reqLog)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= 500 {
				reqLog.Error("request", fields)
				return
			}
			reqLog.Info("request", fields)
		})
	}
}
