package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autoyard/inventory-system/internal/api/handler"
	"github.com/autoyard/inventory-system/internal/api/middleware"
	"github.com/autoyard/inventory-system/internal/core/service"
	"github.com/autoyard/inventory-system/internal/infrastructure/config"
	mongodb "github.com/autoyard/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/autoyard/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	vehicleRepo := mongodb.NewVehicleRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, cfg.Cache.TTL)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	vehicleService := service.NewVehicleService(vehicleRepo, userRepo, catalogCache, log)

	authHandler := handler.NewAuthHandler(authService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	authMiddleware := middleware.Auth(tokenService)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/cars", vehicleHandler.List)
	e.GET("/api/cars/:id", vehicleHandler.Get)

	// --- Protected routes (role decisions live in the policy engine) ---
	e.POST("/api/cars", vehicleHandler.Create, authMiddleware)
	e.PUT("/api/cars/:id", vehicleHandler.Update, authMiddleware)
	e.DELETE("/api/cars/:id", vehicleHandler.Delete, authMiddleware)
	e.GET("/api/user", authHandler.Me, authMiddleware)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
