package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "github.com/redmonkez12/glp1-companion/docs" // Swagger docs (generated)
	"github.com/redmonkez12/glp1-companion/internal/analytics"
	"github.com/redmonkez12/glp1-companion/internal/auth"
	"github.com/redmonkez12/glp1-companion/internal/config"
	"github.com/redmonkez12/glp1-companion/internal/content"
	"github.com/redmonkez12/glp1-companion/internal/database"
	"github.com/redmonkez12/glp1-companion/internal/email"
	httpServer "github.com/redmonkez12/glp1-companion/internal/http"
	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/medication"
	"github.com/redmonkez12/glp1-companion/internal/ratelimit"
	"github.com/redmonkez12/glp1-companion/internal/symptom"
	"github.com/redmonkez12/glp1-companion/internal/user"
)

// @title           GLP-1 Companion API
// @version         1.0
// @description     Side-effect tracking, medication schedules and progress analytics for people on GLP-1 treatment.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// stores holds one implementation of every store interface
type stores struct {
	users       user.Store
	symptoms    symptom.Store
	medications medication.Store
	catalog     content.Catalog
	close       func() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Backend,
		"token_strategy", cfg.Auth.TokenStrategy,
	)
	if cfg.Auth.GeneratedKey {
		logger.Warn("no token key configured, using a random per-process key; sessions will not survive a restart")
	}

	ctx := context.Background()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if cfg.Storage.SeedContent {
		items, err := content.DefaultItems()
		if err != nil {
			return fmt.Errorf("failed to load content catalog: %w", err)
		}
		n, err := content.Seed(ctx, st.catalog, items)
		if err != nil {
			return fmt.Errorf("failed to seed content: %w", err)
		}
		if n > 0 {
			logger.Info("content catalog seeded", "items", n)
		}
	}

	tokens, err := newTokenService(cfg.Auth)
	if err != nil {
		return err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn("redis disabled, auth endpoints are not rate limited")
	}
	rateLimiter := ratelimit.NewLimiter(redisClient, cfg.Redis.RateLimit, cfg.Redis.RateWindow)

	// nil interface, not a typed nil, when SMTP is off
	var emailService auth.EmailService
	if cfg.Email.IsEnabled() {
		emailService = email.NewService(cfg.Email)
	}

	authService := auth.NewService(st.users, tokens, emailService, logger)
	symptomService := symptom.NewService(st.symptoms, logger)
	medicationService := medication.NewService(st.medications, logger)
	analyticsService := analytics.NewService(st.symptoms, st.catalog)

	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Auth:       auth.NewHandler(authService, rateLimiter),
		Symptom:    symptom.NewHandler(symptomService),
		Medication: medication.NewHandler(medicationService),
		Content:    content.NewHandler(st.catalog),
		Analytics:  analytics.NewHandler(analyticsService),
	}, auth.NewMiddleware(authService), logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

func openStores(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*stores, error) {
	if cfg.Storage.Backend == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return &stores{
			users:       user.NewMemoryStore(),
			symptoms:    symptom.NewMemoryStore(),
			medications: medication.NewMemoryStore(),
			catalog:     content.NewMemoryCatalog(),
			close:       func() error { return nil },
		}, nil
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.Storage.AutoMigrate {
		if err := database.Migrate(ctx, db.DB); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("database migrations applied")
	}

	return postgresStores(db), nil
}

func postgresStores(db *bun.DB) *stores {
	return &stores{
		users:       user.NewRepository(db),
		symptoms:    symptom.NewRepository(db),
		medications: medication.NewRepository(db),
		catalog:     content.NewRepository(db),
		close:       db.Close,
	}
}

func newTokenService(cfg config.AuthConfig) (auth.TokenService, error) {
	if cfg.TokenStrategy == config.TokenStrategyJWT {
		svc, err := auth.NewJWTService(cfg.JWTSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		return svc, nil
	}

	svc, err := auth.NewPasetoService(cfg.PasetoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PASETO service: %w", err)
	}
	return svc, nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
