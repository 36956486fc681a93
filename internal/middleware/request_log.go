package middleware

import (
	"net/http"
	"time"

	"genotrack/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger registra una línea por request con el request id de chi y el
// investigador (si lo hay). Debe ir después de RequestID y AuthContext.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if id := ResearcherID(r.Context()); id != "" {
				fields["researcher"] = id
			}

			switch {
			case status >= 500:
				log.Error("request", fields)
			case r.Method == http.MethodGet || r.Method == http.MethodHead:
				log.Debug("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}
