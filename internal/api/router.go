package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/recordhub/records-api/docs"
	"github.com/recordhub/records-api/internal/api/handler"
	"github.com/recordhub/records-api/internal/api/metrics"
	"github.com/recordhub/records-api/internal/api/middleware"
	"github.com/recordhub/records-api/internal/core/domain"
	"github.com/recordhub/records-api/internal/core/ports"
	"github.com/recordhub/records-api/internal/core/service"
)

// Dependencies is everything the router needs to build its handlers.
type Dependencies struct {
	Users  ports.UserRepository
	Orders ports.OrderRepository
	Offers ports.OfferRepository

	// Store is pinged by the readiness probe under StoreName.
	Store     handler.Pinger
	StoreName string

	Logger   zerolog.Logger
	IDPolicy domain.IDPolicy
	// Registry receives both the HTTP and domain metrics. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry
	Swagger  bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = handler.JSONSerializer{}
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, m)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "records",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	users := handler.NewUserHandler(service.NewUserService(deps.Users, deps.IDPolicy, deps.Logger), m)
	orders := handler.NewOrderHandler(service.NewOrderService(deps.Orders, deps.IDPolicy, deps.Logger), m)
	offers := handler.NewOfferHandler(service.NewOfferService(deps.Offers, deps.IDPolicy, deps.Logger), m)

	// --- Record routes ---
	e.GET("/users", users.List)
	e.POST("/users", users.Create)
	e.GET("/users/:id", users.Get)
	e.PUT("/users/:id", users.Update)
	e.DELETE("/users/:id", users.Delete)

	e.GET("/orders", orders.List)
	e.POST("/orders", orders.Create)
	e.GET("/orders/:id", orders.Get)
	e.PUT("/orders/:id", orders.Update)
	e.DELETE("/orders/:id", orders.Delete)

	e.GET("/offers", offers.List)
	e.POST("/offers", offers.Create)
	e.GET("/offers/:id", offers.Get)
	e.PUT("/offers/:id", offers.Update)
	e.DELETE("/offers/:id", offers.Delete)

	// --- Operational routes ---
	health := handler.NewHealthHandler(deps.StoreName, deps.Store)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	if deps.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}
