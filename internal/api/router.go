package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/websap/websap-api/internal/api/handler"
	"github.com/websap/websap-api/internal/api/middleware"
	"github.com/websap/websap-api/internal/core/domain"
	"github.com/websap/websap-api/internal/core/service"
	"github.com/websap/websap-api/internal/infrastructure/config"
	mongodb "github.com/websap/websap-api/internal/infrastructure/db/mongo"
	redisdb "github.com/websap/websap-api/internal/infrastructure/db/redis"
	"github.com/websap/websap-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus
// the reservation dispatcher so the caller can start and stop it.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("websap"))

	// --- Repositories ---
	menuRepo := mongodb.NewMenuRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	reservationRepo := mongodb.NewReservationRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	cache := redisdb.NewEntityCache(rdb, cfg.CacheTTL)

	// --- Services ---
	authService, err := service.NewAuthService()
	if err != nil {
		return nil, nil, err
	}
	fetchService := service.NewFetchService(menuRepo, userRepo, roleRepo, cache, cfg.FetchTimeout, log)
	menuService := service.NewMenuService(menuRepo, cache, log)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	reservationService := service.NewReservationService(reservationRepo, userRepo, notificationRepo, dispatcher, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler(fetchService, menuService)
	adminHandler := handler.NewAdminHandler(fetchService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/verify-token", authHandler.VerifyToken)

	// --- Public menu routes ---
	public := e.Group("/api/public")
	public.GET("/menu", menuHandler.List)
	public.POST("/menu/save", menuHandler.Save)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authMW, adminOnly)
	admin.GET("/usuarios", adminHandler.Users)
	admin.GET("/roles", adminHandler.Roles)
	admin.POST("/platos", menuHandler.Create)
	admin.PUT("/platos/:id", menuHandler.Update)
	admin.DELETE("/platos/:id", menuHandler.Delete)

	// --- WhatsApp reservation routes ---
	whatsapp := e.Group("/api/whatsapp", authMW)
	whatsapp.POST("/reservas", reservationHandler.Create)
	whatsapp.GET("/reservas", reservationHandler.List)
	whatsapp.GET("/notificaciones", reservationHandler.Notifications)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher, nil
}
