package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/api"
	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/infrastructure/config"
	"github.com/footleague/football-api/internal/infrastructure/db/postgres"
	redisdb "github.com/footleague/football-api/internal/infrastructure/db/redis"
	"github.com/footleague/football-api/pkg/logger"
	"github.com/footleague/football-api/pkg/password"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer rdb.Close()

	if err := seedAdmin(ctx, pool, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed bootstrap admin")
	}

	e := api.NewRouter(pool, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}

// seedAdmin provisions the first admin account from AUTH_BOOTSTRAP_* when the
// user table does not already hold it. Without a seeded admin the admin-gated
// user creation endpoint can never be reached on a fresh database.
func seedAdmin(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) error {
	username := cfg.Auth.BootstrapUsername
	if username == "" {
		log.Warn().Msg("no bootstrap admin configured; user provisioning requires an existing admin")
		return nil
	}
	if cfg.Auth.BootstrapPassword == "" {
		return errors.New("AUTH_BOOTSTRAP_USERNAME set without AUTH_BOOTSTRAP_PASSWORD")
	}

	users := postgres.NewUserRepository(pool)
	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := password.Hash(cfg.Auth.BootstrapPassword)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	})
	// Another replica may have seeded between the lookup and the insert.
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return err
	}
	if err == nil {
		log.Info().Str("username", username).Msg("bootstrap admin created")
	}
	return nil
}
