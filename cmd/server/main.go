package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"gatepass/internal/auth"
	"gatepass/internal/broadcast"
	"gatepass/internal/cache"
	"gatepass/internal/clock"
	"gatepass/internal/config"
	"gatepass/internal/db"
	"gatepass/internal/handler"
	"gatepass/internal/metrics"
	"gatepass/internal/repository"
	"gatepass/internal/router"
	"gatepass/internal/service"
)

// @title Gatepass API
// @version 1.0
// @description Gated-community access control: plate verification, visitor passes, gate logs and a live event stream.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
// @securityDefinitions.apikey DeviceKey
// @in header
// @name X-Device-Key
func main() {
	cfg := config.Load()

	logger := config.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("database init", "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate || cfg.ResetDB {
		if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
			logger.Error("migrate", "error", err)
			os.Exit(1)
		}
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable, sessions and user cache degraded", "addr", cfg.RedisAddr, "error", err)
	}
	cancelPing()

	clk := clock.Real()
	m := metrics.New(prometheus.DefaultRegisterer)
	hub := broadcast.NewHub(m)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	passRepo := repository.NewPassRepository(gormDB)
	gateLogRepo := repository.NewGateLogRepository(gormDB)

	// Auth
	jwtService := auth.NewJWTServiceWithClock(cfg.JWTSecret, clk)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, clk, logger)
	userService := service.NewUserService(userRepo, cacheClient)
	vehicleService := service.NewVehicleService(vehicleRepo, logger)
	passService := service.NewPassService(passRepo, logger)
	gateService := service.NewGateService(vehicleRepo, passService, clk, m, logger)
	gateLogService := service.NewGateLogService(gateLogRepo, hub, service.GateLogServiceOptions{
		Clock:        clk,
		Metrics:      m,
		Logger:       logger,
		DefaultLimit: cfg.LogListLimit,
	})

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, router.Deps{
		JWT:    jwtService,
		Tokens: tokenStore,
		Logger: logger,
	}, router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		User:    handler.NewUserHandler(userService),
		Vehicle: handler.NewVehicleHandler(vehicleService),
		Pass:    handler.NewPassHandler(passService, clk),
		Log:     handler.NewLogHandler(gateLogService),
		Gate:    handler.NewGateHandler(gateService),
		Stream:  handler.NewStreamHandler(hub, cfg.WSAllowedOrigins, cfg.WSBuffer, logger),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server listening", "addr", addr, "swagger", swaggerURL(cfg))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	// Close subscriptions first so WebSocket handlers return.
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := cacheClient.Close(); err != nil {
		logger.Warn("redis close", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if len(host) >= 7 && host[:7] == "http://" || len(host) >= 8 && host[:8] == "https://" {
		return host + "/swagger/index.html"
	}
	return "http://" + host + "/swagger/index.html"
}
