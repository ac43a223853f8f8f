package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/adrnf/langganin/internal/pkg/config"
	"github.com/adrnf/langganin/internal/pkg/database"
	"github.com/adrnf/langganin/internal/pkg/health"
	"github.com/adrnf/langganin/internal/pkg/logger"
	"github.com/adrnf/langganin/internal/pkg/middleware"
	natspkg "github.com/adrnf/langganin/internal/pkg/nats"
	nrpkg "github.com/adrnf/langganin/internal/pkg/newrelic"
	catalogHandler "github.com/adrnf/langganin/services/catalog/handler"
	catalogRepository "github.com/adrnf/langganin/services/catalog/repository"
	catalogUsecase "github.com/adrnf/langganin/services/catalog/usecase"
	dashboardHandler "github.com/adrnf/langganin/services/dashboard/handler"
	dashboardRepository "github.com/adrnf/langganin/services/dashboard/repository"
	dashboardUsecase "github.com/adrnf/langganin/services/dashboard/usecase"
	membershipGateway "github.com/adrnf/langganin/services/membership/gateway"
	membershipHandler "github.com/adrnf/langganin/services/membership/handler"
	membershipRepository "github.com/adrnf/langganin/services/membership/repository"
	membershipUsecase "github.com/adrnf/langganin/services/membership/usecase"
	paymentGateway "github.com/adrnf/langganin/services/payment/gateway"
	paymentHandler "github.com/adrnf/langganin/services/payment/handler"
	paymentRepository "github.com/adrnf/langganin/services/payment/repository"
	paymentUsecase "github.com/adrnf/langganin/services/payment/usecase"
)

func main() {
	appName := "langganin"
	configPath := config.GetEnv("CONFIG_PATH", "config/langganin.env")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)

	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Initialize repositories
	packageRepo := catalogRepository.NewPackageRepository(db)
	membershipRepo := membershipRepository.NewMembershipRepository(db)
	paymentRepo := paymentRepository.NewPaymentRepository(db)
	dashboardRepo := dashboardRepository.NewDashboardRepository(db)

	// Initialize gateways
	membershipGW := membershipGateway.NewMembershipGW(natsClient)
	paymentGW := paymentGateway.NewPaymentGW(natsClient)
	snapProvider := paymentGateway.NewMidtransGW(configs.Midtrans)

	// Initialize use cases
	packageUC := catalogUsecase.NewPackageUC(configs, packageRepo)
	membershipUC := membershipUsecase.NewMembershipUC(configs, membershipRepo, packageRepo, membershipGW)
	paymentUC := paymentUsecase.NewPaymentUC(configs, paymentRepo, packageRepo, membershipUC, snapProvider, paymentGW)
	dashboardUC := dashboardUsecase.NewDashboardUC(configs, dashboardRepo, packageRepo, redisClient)

	// Initialize handlers
	packageH := catalogHandler.NewPackageHandler(packageUC)
	membershipH := membershipHandler.NewMembershipHandler(membershipUC)
	paymentH := paymentHandler.NewPaymentHandler(paymentUC)
	dashboardH := dashboardHandler.NewDashboardHandler(dashboardUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Landing route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"service": appName,
			"version": configs.App.Version,
		})
	})

	// Register service routes
	authMW := middleware.JWTAuthMiddleware(configs.JWT)
	packageH.RegisterRoutes(e, authMW)
	membershipH.RegisterRoutes(e, authMW)
	paymentH.RegisterRoutes(e, authMW)
	dashboardH.RegisterRoutes(e, authMW)

	// Start server
	go func() {
		zapLogger.Info("Starting server",
			zap.String("app", appName),
			zap.Int("port", configs.Server.Port),
		)

		if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server",
				zap.String("app", appName),
				zap.Error(err),
			)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server", zap.String("app", appName))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server shutdown error", zap.Error(err))
	}
}
