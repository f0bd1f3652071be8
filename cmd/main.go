package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/router"
	"github.com/RoyceAzure/lab/shopcenter/internal/appcontext"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// @title shopcenter
// @version 1.0
// @description 電商後台: 使用者認證, 商品目錄, 訂單

// @contact.name   API Support

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT token.

func main() {
	cf, err := config.LoadConfig(envFile())
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("load config failed")
	}

	app, err := appcontext.NewApplicationContext(cf)
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("application setup failed")
	}
	logger := app.Logger

	trustedProxies, err := cf.TrustedProxies()
	if err != nil {
		logger.Fatal().Err(err).Msg("parse TRUSTED_PROXIES failed")
	}

	// 初始化 handler
	server := api.NewServer(
		handler.NewAuthHandler(app.AuthService),
		handler.NewProductHandler(app.ProductService),
		handler.NewOrderHandler(app.OrderService),
		handler.NewAdminHandler(app.AdminService, constants.AdminSessionCookieName),
		handler.NewHealthHandler(app),
	)

	// 設置路由
	r := router.SetupRouter(server, router.RouterDeps{
		AuthService:     app.AuthService,
		AdminService:    app.AdminService,
		AdminCookieName: constants.AdminSessionCookieName,
		LoginLimiter:    app.LoginLimiter,
		Metrics:         m.NewHTTPMetrics(prometheus.DefaultRegisterer),
		MetricsHandler:  router.DefaultMetricsHandler(),
		AllowedOrigins:  cf.AllowedOrigins(),
		TrustedProxies:  trustedProxies,
	}, logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cf.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		logger.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Server shutdown error")
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Application shutdown error")
		}

		shutDownCompleted <- struct{}{}
	}()

	// 啟動服務
	logger.Info().Str("addr", srv.Addr).Msg("Server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server stopped unexpectedly")
	}
	<-shutDownCompleted
	closeLogger := zerolog.New(os.Stdout)
	closeLogger.Info().Msg("closed completed")
}

// CONFIG_FILE 未設定時讀工作目錄的 .env
func envFile() string {
	if f := os.Getenv("CONFIG_FILE"); f != "" {
		return f
	}
	return ".env"
}
