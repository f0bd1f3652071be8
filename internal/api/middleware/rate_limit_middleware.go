package middleware

import (
	"net"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/rs/zerolog"
)

// RateLimitMiddleware 以 client ip 限流, 後端錯誤時放行並記錄
func RateLimitMiddleware(limiter ratelimit.ILimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rate limiter unavailable, request allowed")
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				response.ErrorJSON(w, er.New(er.TooManyRequestsCode, ""), "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedRealIP 改寫過的 RemoteAddr 可能只有 ip
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
