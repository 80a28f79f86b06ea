package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/api/handler"
	"github.com/footleague/football-api/internal/api/middleware"
	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/core/service"
	"github.com/footleague/football-api/internal/core/token"
	"github.com/footleague/football-api/internal/infrastructure/config"
	"github.com/footleague/football-api/internal/infrastructure/db/postgres"
	redisdb "github.com/footleague/football-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("football"))

	// --- Dependencies ---
	users := postgres.NewUserRepository(pool)
	clubs := postgres.NewClubRepository(pool)
	players := postgres.NewPlayerRepository(pool)
	goals := postgres.NewGoalRepository(pool)
	cascade := postgres.NewCascadeEngine(pool, log)
	throttle := redisdb.NewLoginThrottle(rdb)

	codec := token.NewCodec(token.Config{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.TokenTTL,
	})
	authService := service.NewAuthService(users, codec, throttle, log)
	leagueService := service.NewLeagueService(clubs, players, goals, cascade, log)

	authHandler := handler.NewAuthHandler(authService)
	clubHandler := handler.NewClubHandler(leagueService)
	playerHandler := handler.NewPlayerHandler(leagueService)
	goalHandler := handler.NewGoalHandler(leagueService)

	authn := middleware.Auth(authService)
	anyRole := middleware.RBAC(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Login)
	e.POST("/users", authHandler.CreateUser, authn, adminOnly)

	// --- League routes (any authenticated identity) ---
	league := e.Group("", authn, anyRole)

	league.GET("/clubs", clubHandler.List)
	league.POST("/clubs", clubHandler.Create)
	league.PUT("/clubs/:id", clubHandler.Update)
	league.DELETE("/clubs/:id", clubHandler.Delete)

	league.GET("/players", playerHandler.List)
	league.POST("/players", playerHandler.Create)
	league.PUT("/players/:id", playerHandler.Update)
	league.DELETE("/players/:id", playerHandler.Delete)

	league.GET("/goals", goalHandler.List)
	league.POST("/goals", goalHandler.Create)
	league.PUT("/goals/:id", goalHandler.Update)
	league.DELETE("/goals/:id", goalHandler.Delete)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
