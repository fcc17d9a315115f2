package gamehttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logRequest writes one line per completed request.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Printf(
			"request_completed method=%s path=%s status=%d duration=%v request_id=%s bytes_written=%d remote_addr=%s",
			r.Method,
			r.URL.Path,
			ww.Status(),
			time.Since(start),
			middleware.GetReqID(r.Context()),
			ww.BytesWritten(),
			r.RemoteAddr,
		)
	})
}
