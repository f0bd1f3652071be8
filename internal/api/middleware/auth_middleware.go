package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/rs/zerolog"
)

// AuthMiddleware 保護需要登入的路由
// 沒有 Authorization header 回 401, 格式錯誤或 token 無效回 403
// 驗證成功後將 payload 放入 ctx, 並把 user_id 加到 request logger
func AuthMiddleware(authService service.IAuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, err := checkAuthPayload(authService, r)
			if err != nil {
				response.ErrorJSON(w, err, "")
				return
			}
			// LoggerMiddleware 最後的 access log 也用同一個 logger
			zerolog.Ctx(r.Context()).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("user_id", payload.UserId)
			})
			ctx := context.WithValue(r.Context(), constants.AuthorizationPayloadKey, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func checkAuthPayload(authService service.IAuthService, r *http.Request) (*token.Payload, error) {
	authorizationHeader := r.Header.Get(string(constants.AuthorizationHeaderKey))
	if len(authorizationHeader) == 0 {
		return nil, er.New(er.UnauthenticatedCode, "")
	}

	fields := strings.Fields(authorizationHeader)
	if len(fields) != 2 {
		return nil, er.New(er.UnauthorizedCode, "")
	}

	authorizationType := strings.ToLower(fields[0])
	if authorizationType != string(constants.AuthorizationTypeBearer) {
		return nil, er.New(er.UnauthorizedCode, "")
	}

	payload, err := authService.VerifyAccessToken(fields[1])
	if err != nil {
		return nil, er.New(er.UnauthorizedCode, "")
	}
	return payload, nil
}
