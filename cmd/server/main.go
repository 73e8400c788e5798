package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gamestore/backend/internal/config"
	"gamestore/backend/internal/database"
	"gamestore/backend/internal/router"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title           GameStore API
// @version         1.0
// @description     Catalog of games and their genres.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("Unable to load configuration: %v", err)
	}
	log := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseURL, cfg.DBSlowThreshold, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access connection pool: %v", err)
	}
	defer sqlDB.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(sqlDB, log); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	engine := router.New(store.NewGormStore(db), log, router.Options{
		RequestTimeout: cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("Server is running")
		log.Infof("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
