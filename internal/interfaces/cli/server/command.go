package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"leafsmp/internal/infrastructure/config"
	"leafsmp/internal/infrastructure/database"
	"leafsmp/internal/infrastructure/migration"
	httpRouter "leafsmp/internal/interfaces/http"
	"leafsmp/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the LeafSMP HTTP server serving the ticket, chat and server status APIs.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production); overrides server.mode")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Apply pending database migrations on startup (sqlite/mysql storage only)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	mode := ""
	if env != "" {
		mode = mapEnvToGinMode(env)
	}

	cfg, err := config.Load(mode)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(cfg.Server.Mode)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	log.Infow("starting server",
		"mode", cfg.Server.Mode,
		"storage", cfg.Storage.Driver,
		"redis", cfg.Redis.Enabled,
		"email", cfg.Email.Enabled)
	if cfg.Auth.JWT.Secret == config.DefaultJWTSecret {
		log.Warnw("auth.jwt.secret is the built-in default, set LEAFSMP_AUTH_JWT_SECRET in production")
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	var db *gorm.DB
	if cfg.Storage.UsesDatabase() {
		if err := database.Init(cfg.Storage.Driver, &cfg.Database); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer func() {
			if err := database.Close(); err != nil {
				log.Errorw("failed to close database", "error", err)
			}
		}()
		db = database.Get()

		if err := handleMigrations(cfg.Storage.Driver, db, log); err != nil {
			return err
		}
	}

	container, err := httpRouter.NewContainer(db, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	err = container.Start(startCtx)
	cancelStart()
	if err != nil {
		return err
	}

	// WriteTimeout stays zero so chat streams are not cut off.
	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           container.Engine(),
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(driver string, db *gorm.DB, log logger.Interface) error {
	manager, err := migration.NewManager(driver, log)
	if err != nil {
		return fmt.Errorf("failed to create migration manager: %w", err)
	}

	if autoMigrate {
		if err := manager.Migrate(db); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	version, err := manager.Version(db)
	if err != nil {
		log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	log.Infow("current migration version", "version", version, "auto_migrate", autoMigrate)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
