package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/attendance"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/auth"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/config"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/logger"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/storage"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/stats"
	"github.com/covaciuandrei/gym-attendance-tracker/internal/supplement"
)

func main() {
	cfgPath := config.DefaultPath
	if v := os.Getenv("TRACKER_CONFIG"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	log, err := logger.Init(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting", zap.String("mode", cfg.Mode), zap.String("version", cfg.Version))

	backend, err := storage.Open(cfg, log)
	if err != nil {
		log.Fatal("open storage", zap.Error(err))
	}
	defer backend.Close()

	if backend.IsLocalFallback() {
		log.Warn("remote store unavailable, running on local fallback", zap.String("path", cfg.Local.Path))
	}

	secret := []byte(cfg.Auth.JWTSecret)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour

	authSvc := auth.NewService(backend, secret, tokenTTL)
	attSvc := attendance.NewService(backend)
	supSvc := supplement.NewService(backend)
	statsSvc := stats.NewService(attSvc, supSvc)

	if n, err := supSvc.SeedIfEmpty(context.Background()); err != nil {
		log.Warn("seed ingredient catalog", zap.Error(err))
	} else if n > 0 {
		log.Info("seeded ingredient catalog", zap.Int("count", n))
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), logger.Requests(log))
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		// CORS, only needed while the frontend runs on its own dev server
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:4200"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api/v1")
	api.Use(auth.Identity(secret))

	api.GET("/storage", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"localFallback": backend.IsLocalFallback()})
	})

	auth.RegisterRoutes(api, authSvc, secret)
	attendance.RegisterRoutes(api, attSvc)
	supplement.RegisterRoutes(api, supSvc)
	stats.RegisterRoutes(api, statsSvc)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("serve", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown", zap.Error(err))
	}
}
