package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/wordtower/pkg/observability"
)

// requestLogger logs one record per request and reports it to the server
// hooks under the matched route pattern.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				route := r.URL.Path
				if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
					route = rctx.RoutePattern()
				}
				took := time.Since(start)

				logger.Info("request",
					"method", r.Method,
					"route", route,
					"status", status,
					"bytes", ww.BytesWritten(),
					"took", took.Round(time.Microsecond),
					"id", middleware.GetReqID(r.Context()))
				observability.Server().OnRequest(r.Context(), r.Method, route, status, took)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
