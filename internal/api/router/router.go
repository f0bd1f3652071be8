package router

import (
	"net/http"
	"net/netip"

	_ "github.com/RoyceAzure/lab/shopcenter/docs"
	"github.com/RoyceAzure/lab/shopcenter/internal/api"
	m "github.com/RoyceAzure/lab/shopcenter/internal/api/middleware"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/ratelimit"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RouterDeps struct {
	AuthService     service.IAuthService
	AdminService    service.IAdminService
	AdminCookieName string
	LoginLimiter    ratelimit.ILimiter
	Metrics         *m.HTTPMetrics
	// nil 時不提供 /metrics
	MetricsHandler http.Handler
	AllowedOrigins []string
	// 只信任這些來源帶的 X-Forwarded-For
	TrustedProxies []netip.Prefix
}

func SetupRouter(server *api.Server, deps RouterDeps, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(m.TrustedRealIP(deps.TrustedProxies))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	loginLimit := m.RateLimitMiddleware(deps.LoginLimiter)

	// API 文件
	r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	r.Get("/health", server.HealthHandler.Health)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", server.AuthHandler.Register)
		r.With(loginLimit).Post("/login", server.AuthHandler.Login)
	})

	// 需要 bearer token
	r.Group(func(r chi.Router) {
		r.Use(m.AuthMiddleware(deps.AuthService))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Post("/", server.ProductHandler.CreateProduct)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Put("/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/{id}", server.ProductHandler.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", server.OrderHandler.ListOrders)
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Put("/{id}", server.OrderHandler.UpdateOrder)
			r.Delete("/{id}", server.OrderHandler.DeleteOrder)
		})
	})

	// 後台, 以 session cookie 驗證
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", server.AdminHandler.LoginPage)
		r.With(loginLimit).Post("/login", server.AdminHandler.Login)
		r.Post("/logout", server.AdminHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(m.AdminSessionMiddleware(deps.AdminService, deps.AdminCookieName))
			r.Get("/", server.AdminHandler.Index)
			r.Get("/orders", server.AdminHandler.ListOrders)
			r.Get("/orders/report", server.AdminHandler.ExportReport)
			r.Get("/orders/new", server.AdminHandler.NewOrderPage)
			r.Post("/orders/new", server.AdminHandler.CreateOrder)
			r.Get("/orders/{id}", server.AdminHandler.EditOrderPage)
			r.Post("/orders/{id}", server.AdminHandler.UpdateOrder)
			r.Post("/orders/{id}/delete", server.AdminHandler.DeleteOrder)
		})
	})

	// 在設置完所有路由後記錄路由樹
	_ = chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
		return nil
	})
	return r
}

// DefaultMetricsHandler promhttp 預設 registry
func DefaultMetricsHandler() http.Handler {
	return promhttp.Handler()
}
