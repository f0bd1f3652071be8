package middleware

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *StatusRecoder) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Status handler 沒有寫任何東西時視為 200
func (w *StatusRecoder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *StatusRecoder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func newStatusRecoder(w http.ResponseWriter) *StatusRecoder {
	if rec, ok := w.(*StatusRecoder); ok {
		return rec
	}
	return &StatusRecoder{ResponseWriter: w}
}

// 記錄request 請求
// 帶 request_id 的 logger 會放進 ctx, 之後的 handler 用 zerolog.Ctx 取得
func LoggerMiddleware(logger zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := logger.With().
				Str("request_id", util.GetRequestIDFromContext(r.Context())).
				Logger().
				WithContext(r.Context())
			r = r.WithContext(ctx)
			// 下游 (AuthMiddleware) 會以 UpdateContext 補上 user_id, 這裡要拿 ctx 裡的同一個 pointer
			reqLogger := zerolog.Ctx(ctx)

			recoder := newStatusRecoder(w)
			next.ServeHTTP(recoder, r)

			status := recoder.Status()
			var event *zerolog.Event
			switch {
			case status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case status >= http.StatusBadRequest:
				event = reqLogger.Warn()
			default:
				event = reqLogger.Info()
			}

			event.
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Int("status", status).
				Int("size", recoder.size).
				Dur("latency", time.Since(start)).
				Msg("request completed")
		})
	}
}
