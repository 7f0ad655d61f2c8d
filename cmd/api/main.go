package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rolandaayo/Astral-cu/internal/config"
	"github.com/rolandaayo/Astral-cu/internal/db"
	"github.com/rolandaayo/Astral-cu/internal/email"
	"github.com/rolandaayo/Astral-cu/internal/handlers"
	"github.com/rolandaayo/Astral-cu/internal/middleware"
	"github.com/rolandaayo/Astral-cu/internal/models"
	"github.com/rolandaayo/Astral-cu/internal/repository"
	"github.com/rolandaayo/Astral-cu/internal/scheduler"
	"github.com/rolandaayo/Astral-cu/internal/security"
	"github.com/rolandaayo/Astral-cu/internal/service"
	"github.com/rolandaayo/Astral-cu/internal/storage"
)

// migrateRetryInterval paces schema catch-up attempts after a degraded boot.
const migrateRetryInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting credit union api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	// The process serves degraded when the database is down at startup;
	// requests that need it fail with 503 until it comes back.
	database, err := db.Open(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	storeUp := database.PingContext(ctx) == nil
	if storeUp {
		if err := database.EnsureMigrated(ctx); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("database unreachable, migrations deferred until it answers")
	}

	userRepo := repository.NewUserRepository(database)
	pendingRepo := repository.NewPendingRepository(database)
	messageRepo := repository.NewMessageRepository(database)

	// An existing account under the admin email is promoted on every boot,
	// so the role survives a restore of the users table. New signups with
	// that email get the role directly.
	if storeUp && cfg.App.AdminEmail != "" {
		promoted, err := userRepo.SetRoleByEmail(ctx, cfg.App.AdminEmail, models.RoleAdmin)
		if err != nil {
			logger.Error("failed to promote admin account", "email", cfg.App.AdminEmail, "error", err)
		} else if promoted {
			logger.Info("promoted admin account", "email", cfg.App.AdminEmail)
		}
	}

	tokens := security.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenExpiry)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)

	var mailer email.Mailer
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPMailer(&cfg.SMTP)
	} else {
		logger.Warn("SMTP_HOST not set, verification codes will be logged instead of emailed")
		mailer = email.NewLogMailer(logger)
	}

	docs, err := storage.NewMinioDocumentStore(&cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize document storage", "error", err)
		os.Exit(1)
	}

	var limiter middleware.Limiter
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		limiter = middleware.NewRedisLimiter(client, "")
		logger.Info("using redis rate limiter", "addr", cfg.Redis.Addr)
	} else {
		limiter = middleware.NewLocalLimiter()
	}

	authService := service.NewAuthService(userRepo, tokens, hasher, logger)
	verifyService := service.NewVerificationService(
		userRepo, pendingRepo, docs, mailer, tokens, hasher, cfg.App.AdminEmail, cfg.App.CodeTTL, logger,
	)
	topUpService := service.NewTopUpService(userRepo, logger)
	messageService := service.NewMessagingService(messageRepo, userRepo, logger)
	userService := service.NewUserService(userRepo, logger)

	handler := handlers.NewHandler(
		authService, verifyService, topUpService, messageService, userService, database, logger,
	)

	router := handlers.NewRouter(handler, handlers.RouterDeps{
		Tokens:              tokens,
		Users:               userRepo,
		Store:               database,
		Limiter:             limiter,
		RateLimit:           cfg.App.AuthRateLimit,
		RateWindow:          cfg.App.AuthRateWindow,
		VerificationEnabled: cfg.App.VerificationEnabled,
		Logger:              logger,
	})

	tasks := []*scheduler.Task{
		{
			Name:         "daily-topup",
			InitialDelay: cfg.App.TopUpInitialDelay,
			Interval:     cfg.App.TopUpInterval,
			Logger:       logger,
			Run: func(ctx context.Context) error {
				_, err := topUpService.Run(ctx)
				return err
			},
		},
		{
			Name:         "pending-sweep",
			InitialDelay: cfg.App.SweepInterval,
			Interval:     cfg.App.SweepInterval,
			Logger:       logger,
			Run: func(ctx context.Context) error {
				_, err := verifyService.SweepExpired(ctx)
				return err
			},
		},
	}

	// The schema catches up in the background when the database was down
	// at boot.
	if !storeUp {
		tasks = append(tasks, &scheduler.Task{
			Name:         "migrate-retry",
			InitialDelay: migrateRetryInterval,
			Interval:     migrateRetryInterval,
			Logger:       logger,
			Run:          database.EnsureMigrated,
		})
	}

	sched := scheduler.New(tasks...)
	sched.Start(ctx)
	defer sched.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}
