package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pingers []Pinger
}

func NewHealthHandler(pingers ...Pinger) *HealthHandler {
	return &HealthHandler{pingers: pingers}
}

// @Summary health check
// @Tags ops
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	// 同時 ping, 第一個錯誤會取消其餘
	g, gCtx := errgroup.WithContext(ctx)
	for _, p := range h.pingers {
		p := p
		g.Go(func() error {
			return p.Ping(gCtx)
		})
	}
	if err := g.Wait(); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("health check failed")
		response.WriteJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	response.SuccessJSON(w, dto.HealthResponse{Status: "ok"})
}
