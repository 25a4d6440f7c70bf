package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/zorepad/influencer-hub/backend/internal/router"
	"github.com/zorepad/influencer-hub/backend/pkg/cache"
	"github.com/zorepad/influencer-hub/backend/pkg/config"
	"github.com/zorepad/influencer-hub/backend/pkg/firebase"
	"github.com/zorepad/influencer-hub/backend/pkg/logger"
	"github.com/zorepad/influencer-hub/backend/validators"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := config.InitDB()
	if err != nil {
		zapLogger.Fatal("Failed to initialize databases", zap.Error(err))
	}
	defer db.CloseDB()

	// Redis is optional; the catalog falls back to direct MongoDB reads
	var catalogCache *cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, zapLogger)
		if err != nil {
			zapLogger.Warn("Redis unavailable, catalog caching disabled", zap.Error(err))
			catalogCache = nil
		} else {
			defer catalogCache.Close()
		}
	}

	firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
	if err != nil {
		zapLogger.Fatal("Failed to initialize Firebase", zap.Error(err))
	}

	e := echo.New()
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	router.SetupRoutes(e, db, firebaseApp, catalogCache, zapLogger, cfg)

	zapLogger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := e.Start(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}
