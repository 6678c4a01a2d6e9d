package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"community-portal-backend/docs"
	"community-portal-backend/internal/common/cache"
	"community-portal-backend/internal/common/config"
	"community-portal-backend/internal/common/logger"
	"community-portal-backend/internal/common/middleware"
	approvalhttp "community-portal-backend/internal/features/approval/delivery/http"
	approvalpg "community-portal-backend/internal/features/approval/repository/postgres"
	approvalsvc "community-portal-backend/internal/features/approval/service"
	interesthttp "community-portal-backend/internal/features/interest/delivery/http"
	interestpg "community-portal-backend/internal/features/interest/repository/postgres"
	interestsvc "community-portal-backend/internal/features/interest/service"
	userhttp "community-portal-backend/internal/features/user/delivery/http"
	userpg "community-portal-backend/internal/features/user/repository/postgres"
	usersvc "community-portal-backend/internal/features/user/service"
	"community-portal-backend/internal/notify"
	"community-portal-backend/internal/platform/db"
	"community-portal-backend/internal/platform/mail"
	redisplatform "community-portal-backend/internal/platform/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
)

// @title Community Portal API
// @version 1.0
// @description Backend for the community portal: member registration with multi-admin approval, matrimonial interests and profile management.
// @BasePath /api/v1
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger.Init("portal-backend", cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Postgres.AutoMigrate {
		if err := db.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
			logger.Fatal().Err(err).Msg("Migrations failed")
		}
	}

	pool, err := db.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("Postgres open failed")
	}
	defer pool.Close()

	rdb, err := redisplatform.Open(ctx, redisplatform.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Redis open failed")
	}
	defer rdb.Close()

	mailer := mail.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	publisher := notify.NewStreamPublisher(rdb)
	worker := notify.NewWorker(rdb, mailer)
	go worker.Start(ctx)

	cacheService := cache.NewCacheService(rdb)

	userRepo := userpg.NewPostgresRepository(pool)
	userService := usersvc.NewUserService(userRepo, cacheService)
	userHandler := userhttp.NewUserHandler(userService)

	approvalRepo := approvalpg.NewPostgresRepository(pool)
	approvalService := approvalsvc.NewApprovalService(approvalRepo, publisher, cfg.Approval.RequiredApprovals)
	approvalHandler := approvalhttp.NewApprovalHandler(approvalService)

	interestRepo := interestpg.NewPostgresRepository(pool)
	interestService := interestsvc.NewInterestService(interestRepo, userRepo, publisher)
	interestHandler := interesthttp.NewInterestHandler(interestService)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID", "X-Admin-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api/v1")
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg.Admin.Token))

	userHandler.RegisterRoutes(api, admin)
	approvalHandler.RegisterRoutes(admin)
	interestHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
