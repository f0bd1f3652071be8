package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

// AdminSessionMiddleware 後台路由需要有效的 session cookie, 否則導回登入頁
func AdminSessionMiddleware(adminService service.IAdminService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				http.Redirect(w, r, constants.AdminLoginPath, http.StatusSeeOther)
				return
			}

			session, err := adminService.ValidateSession(cookie.Value)
			if err != nil {
				http.Redirect(w, r, constants.AdminLoginPath, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), constants.AdminSessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
