package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adminboard/user-service/internal/api/handler"
	"github.com/adminboard/user-service/internal/api/middleware"
	"github.com/adminboard/user-service/internal/core/service"
	mongodb "github.com/adminboard/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/adminboard/user-service/internal/infrastructure/db/redis"
	"github.com/adminboard/user-service/internal/pkg/password"
	"github.com/adminboard/user-service/internal/pkg/token"
)

// RouterConfig carries everything the router needs beyond its datastores.
type RouterConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	LoginMaxFailures int64
	LoginWindow      time.Duration
	Logger           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("useradmin"))

	// --- Dependencies ---
	codec := password.Codec{}
	tokens := token.NewManager(token.Config{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxFailures, cfg.LoginWindow)

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)

	authService := service.NewAuthService(userRepo, tokens, codec, throttle, cfg.Logger)
	userService := service.NewUserService(userRepo, roleRepo, codec, cfg.Logger)
	roleService := service.NewRoleService(roleRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated API ---
	users := e.Group("/users", authMiddleware)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.GET("/email/:email", userHandler.GetByEmail)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	roles := e.Group("/roles", authMiddleware)
	roles.GET("", roleHandler.List)
	roles.GET("/:id", roleHandler.GetByID)
	roles.GET("/name/:name", roleHandler.GetByName)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
