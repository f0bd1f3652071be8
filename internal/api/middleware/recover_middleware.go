package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	er "github.com/RoyceAzure/lab/shopcenter/internal/util/rj_error"
	"github.com/rs/zerolog"
)

func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				zerolog.Ctx(r.Context()).Error().
					Err(err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.ErrorJSON(w, er.New(er.InternalErrorCode, err.Error()), "Internal Server Error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
