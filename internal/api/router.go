package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bootify/catalog-api/docs"
	"github.com/bootify/catalog-api/internal/api/handler"
	"github.com/bootify/catalog-api/internal/api/middleware"
	"github.com/bootify/catalog-api/internal/core/domain"
	"github.com/bootify/catalog-api/internal/core/ports"
)

// Dependencies carries the constructed collaborators the router wires into
// handlers. Everything is injected; nothing is looked up globally.
type Dependencies struct {
	AuthService    ports.AuthService
	TokenService   ports.TokenService
	CatalogService ports.CatalogService
	Mongo          *mongo.Database
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The route table below is the authoritative map of path → required role.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// The browser client runs on its own origin; preflight answers are
	// cacheable for an hour.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		MaxAge:       3600,
	}))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	authGate := middleware.Auth(deps.TokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	productHandler := handler.NewProductHandler(deps.CatalogService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)                   // public
	auth.GET("/validate", authHandler.Validate, authGate)    // any valid token

	// --- Product routes ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)                                        // public
	products.GET("/:id", productHandler.Get)                                     // public
	products.POST("/create", productHandler.Create, authGate, adminOnly)         // ADMIN
	products.PUT("/:id/update", productHandler.Update, authGate, adminOnly)      // ADMIN
	products.DELETE("/:id/delete", productHandler.Delete, authGate, adminOnly)   // ADMIN
	products.PATCH("/:id/stock", productHandler.UpdateStock, authGate, adminOnly) // ADMIN

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
