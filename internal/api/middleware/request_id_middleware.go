package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/google/uuid"
)

// RequestIdMiddleware 沿用 client 帶來的 X-Request-Id, 沒有則產生新的, 並回寫到 response header
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get(constants.RequestIDHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		w.Header().Set(constants.RequestIDHeader, requestId)

		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
