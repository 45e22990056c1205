package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bootify/catalog-api/internal/api"
	"github.com/bootify/catalog-api/internal/core/service"
	"github.com/bootify/catalog-api/internal/infrastructure/bootstrap"
	mongodb "github.com/bootify/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bootify/catalog-api/internal/infrastructure/db/redis"
	"github.com/bootify/catalog-api/internal/infrastructure/queue"
	"github.com/bootify/catalog-api/internal/pkg/config"
	"github.com/bootify/catalog-api/pkg/logger"
)

// @title        Catalog API
// @version      1.0
// @description  JWT-authenticated product catalog with role-gated CRUD and soft delete.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create product indexes")
	}

	// --- Development seeding (explicitly opt-in) ---
	if cfg.SeedDefaults {
		log.Warn().Msg("SEED_DEFAULTS is enabled; seeding default credentials")
		seeder := bootstrap.NewSeeder(userRepo, roleRepo, productRepo, log)
		if err := seeder.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	// --- Core services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)

	journal := queue.NewJournal(0, log)
	journal.Start(ctx)

	productCache := redisdb.NewProductCache(rdb)
	catalogService := service.NewCatalogService(productRepo, productCache, journal, log)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		AuthService:    authService,
		TokenService:   tokenService,
		CatalogService: catalogService,
		Mongo:          db,
		Redis:          rdb,
		Logger:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
