package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	issueUC "dishpatch/internal/application/issue/usecases"
	orderUC "dishpatch/internal/application/order/usecases"
	"dishpatch/internal/infrastructure/config"
	"dishpatch/internal/infrastructure/database"
	"dishpatch/internal/infrastructure/persistence/migrations"
	"dishpatch/internal/infrastructure/repository"
	issuehandlers "dishpatch/internal/interfaces/http/handlers/issue"
	orderhandlers "dishpatch/internal/interfaces/http/handlers/order"
	"dishpatch/internal/interfaces/http/middleware"
	"dishpatch/internal/interfaces/http/routes"
	"dishpatch/internal/shared/db"
	"dishpatch/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the dishpatch HTTP server with the configured database and routes.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := runMigrations(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Info("database migrations applied")
	}

	engine := buildEngine(log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}

func buildEngine(log logger.Interface) *gin.Engine {
	gormDB := database.Get()

	issueRepo := repository.NewIssueRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	accountRepo := repository.NewAccountRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	issueHandler := issuehandlers.NewIssueHandler(
		issueUC.NewCreateIssueUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewAddMessageUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewAddAttachmentUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewChangeStatusUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewOwnerRefundUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewAdminCreditUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewReplyIssueUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewResolveOwnerIssueUseCase(issueRepo, eventRepo, orderRepo, accountRepo, txManager, log),
		issueUC.NewGetIssueUseCase(issueRepo, eventRepo, orderRepo, accountRepo, log),
		issueUC.NewListIssuesUseCase(issueRepo, accountRepo, log),
	)

	orderHandler := orderhandlers.NewOrderHandler(
		orderUC.NewUpdateOrderStatusUseCase(orderRepo, accountRepo, txManager, log),
		orderUC.NewAcceptOrderUseCase(orderRepo, accountRepo, txManager, log),
		orderUC.NewStartDeliveryUseCase(orderRepo, accountRepo, txManager, log),
		orderUC.NewCompleteDeliveryUseCase(orderRepo, accountRepo, txManager, log),
		orderUC.NewGetOrderUseCase(orderRepo, accountRepo, log),
	)

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupIssueRoutes(engine, &routes.IssueRouteConfig{
		IssueHandler: issueHandler,
		Logger:       log,
	})
	routes.SetupOrderRoutes(engine, &routes.OrderRouteConfig{
		OrderHandler: orderHandler,
		Logger:       log,
	})

	return engine
}

func runMigrations() error {
	gormDB := database.Get()

	if err := migrations.MigrateAccountTables(gormDB); err != nil {
		return err
	}
	if err := migrations.MigrateOrderTables(gormDB); err != nil {
		return err
	}
	return migrations.MigrateIssueTables(gormDB)
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
