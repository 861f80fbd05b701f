package devserver

import (
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/danmu-client/internal/logger"
	"github.com/MKhiriev/danmu-client/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		latency := time.Since(start)
		status := lw.Status()
		email := authEmail(r)

		log.Info().
			Int("status", status).
			Str("client_ip", clientIP(r)).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("latency", latency).
			Int("size", lw.size).
			Str("user_agent", r.UserAgent()).
			Str("auth_email", email).
			Str("referer", r.Referer()).
			Msg("HTTP Request")

		if status >= http.StatusBadRequest {
			log.Error().
				Int("status", status).
				Str("client_ip", clientIP(r)).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("latency", latency).
				Str("user_agent", r.UserAgent()).
				Str("auth_email", email).
				Msg("HTTP Error")
		}
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// authEmail reads the e-mail claim of the request's bearer token, if any.
// The signature is not checked; the value only labels log lines.
func authEmail(r *http.Request) string {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return ""
	}

	claims, err := utils.ParseClaimsUnverified(token)
	if err != nil {
		return ""
	}

	return claims.Email
}
