package router

import (
	"net/http"
	"time"

	"gamestore/backend/internal/handler"
	"gamestore/backend/internal/metrics"
	"gamestore/backend/internal/middleware"
	"gamestore/backend/internal/store"
	"gamestore/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Swagger imports
	_ "gamestore/backend/docs"
)

// Options tunes the request pipeline.
type Options struct {
	RequestTimeout time.Duration
	// RateLimitRPS of zero disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// New builds the HTTP engine with every resource mounted at the service root.
func New(s store.Store, log *logrus.Logger, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestLogger(log),
		gin.Recovery(),
		metrics.Middleware(),
	)
	if opts.RateLimitRPS > 0 {
		router.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	router.Use(middleware.ErrorBoundary(log))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	validator := validation.New()
	handler.NewGameHandler(s, validator, opts.RequestTimeout).RegisterRoutes(router.Group("/games"))
	handler.NewGenreHandler(s, opts.RequestTimeout).RegisterRoutes(router.Group("/genres"))

	return router
}
