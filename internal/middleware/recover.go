package middleware

import (
	"net/http"
	"runtime/debug"

	"animal-shelter/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea con nuestro logger
// y responde el mismo body JSON que el resto de errores.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.FromContext(r.Context(), log).Error("panic recovered", logger.Fields{
					"panic": rec,
					"stack": string(debug.Stack()),
				})
				writeError(w, errPanic)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
