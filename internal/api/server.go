package api

import "github.com/RoyceAzure/lab/shopcenter/internal/api/handler"

type Server struct {
	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	HealthHandler  *handler.HealthHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	return &Server{
		AuthHandler:    authHandler,
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
		AdminHandler:   adminHandler,
		HealthHandler:  healthHandler,
	}
}
