package api

import (
	"encoding/json/v2"
	"net"
	"net/http"
)

// rateLimit throttles requests per client address. The timer and chat
// endpoints are polled aggressively by clients, so the bucket sizes come
// from configuration rather than hard-coded values.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientKey(r)) {
			s.logger.Warn("rate limit exceeded", "remote", r.RemoteAddr, "path", r.URL.Path)
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey derives the limiter key from the request. RealIP middleware
// runs first, so RemoteAddr already reflects X-Forwarded-For.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeError emits an APIError-shaped body from plain chi middleware,
// outside the huma pipeline.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.MarshalWrite(w, &APIError{
		Code:    code,
		Message: message,
	})
}
