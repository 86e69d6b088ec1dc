package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/victorygp/portal/internal/portal/blob"
	httpapi "github.com/victorygp/portal/internal/portal/http"
	"github.com/victorygp/portal/internal/portal/mail"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/internal/portal/store"
	"github.com/victorygp/portal/internal/portal/store/drivers/sqlite"
	"github.com/victorygp/portal/pkg/jwtx"
	"github.com/victorygp/portal/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	blobs    blob.Storage
	sender   mail.Sender
	signer   jwtx.Signer
	verifier jwtx.Verifier

	// Services
	authService         *service.AuthService
	userService         *service.UserService
	mfaService          *service.MFAService
	investmentService   *service.InvestmentService
	profileService      *service.ProfileService
	documentService     *service.DocumentService
	dealService         *service.DealService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("PORTAL_JWT_SECRET is required")
	}

	signer, err := jwtx.NewSignerHS256([]byte(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.signer = signer
	app.verifier = verifier

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := app.initBlobStorage(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initMail()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("portal service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("portal service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initBlobStorage connects to the object store and ensures the document
// bucket exists.
func (app *Application) initBlobStorage(ctx context.Context) error {
	storage, err := blob.NewS3Storage(ctx, blob.S3Config{
		Region:       app.cfg.S3Region,
		Endpoint:     app.cfg.S3Endpoint,
		AccessKey:    app.cfg.S3AccessKey,
		SecretKey:    app.cfg.S3SecretKey,
		Bucket:       app.cfg.S3Bucket,
		UsePathStyle: app.cfg.S3UsePathStyle,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}
	if err := storage.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure document bucket: %w", err)
	}
	app.blobs = storage

	app.logger.Info("blob storage ready", "bucket", app.cfg.S3Bucket)
	return nil
}

// initMail wires the SMTP sender, or a log-only recorder when no relay is
// configured (dev mode).
func (app *Application) initMail() {
	if app.cfg.SMTPHost == "" {
		app.logger.Warn("no SMTP relay configured, emails will only be logged")
		app.sender = mail.NewLogSender(app.logger)
		return
	}

	app.sender = mail.NewSMTPSender(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		User:     app.cfg.SMTPUser,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
		AppName:  app.cfg.AppName,
	})
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Mail:   app.sender,
		Signer: app.signer,
		Issuer: app.cfg.Issuer,
	}

	app.userService = &service.UserService{Store: app.db}
	app.mfaService = &service.MFAService{
		Store:  app.db,
		Issuer: app.cfg.AppName,
	}
	app.investmentService = &service.InvestmentService{Store: app.db}
	app.profileService = &service.ProfileService{Store: app.db}
	app.documentService = &service.DocumentService{
		Store:  app.db,
		Blobs:  app.blobs,
		Logger: app.logger,
	}
	app.dealService = &service.DealService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.sender,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.MFAService = app.mfaService
	router.InvestmentService = app.investmentService
	router.ProfileService = app.profileService
	router.DocumentService = app.documentService
	router.DealService = app.dealService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
