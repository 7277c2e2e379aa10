package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"restaurantapi/docs"
	"restaurantapi/internal/asset"
	"restaurantapi/internal/config"
	"restaurantapi/internal/database"
	"restaurantapi/internal/database/migration"
	handlers "restaurantapi/internal/http/handler"
	"restaurantapi/internal/http/middleware"
	"restaurantapi/internal/logger"
	"restaurantapi/internal/otel"
	"restaurantapi/internal/repository"
	"restaurantapi/internal/repository/mysql"
	"restaurantapi/internal/repository/postgres"
	"restaurantapi/internal/service"
	"restaurantapi/internal/storage"
)

const maxBodyBytes = 20 << 20

// @title Restaurant API
// @version 1.0
// @description Menu management and staff login for the restaurant app.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Open never dials; an unreachable database only fails the requests that need it.
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("failed to configure database", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := database.Ping(pingCtx, db); err != nil {
		log.Error("database_unreachable", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	} else {
		log.Info("database_connected", zap.String("driver", cfg.Database.Driver))
		if cfg.Database.AutoMigrate {
			if err := migration.EnsureMigrated(pingCtx, db, cfg.Database.Driver, log); err != nil {
				log.Error("migration_failed", zap.Error(err))
			}
		}
	}
	cancel()

	backend, err := storage.New(cfg.Storage, cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	var assetOpts []asset.Option
	if cfg.Storage.Naming == "uuid" {
		assetOpts = append(assetOpts, asset.WithUUIDNames())
	}
	assets := asset.NewStore(backend, cfg.PublicBaseURL, assetOpts...)

	var uploadDir string
	if local, ok := backend.(*storage.Local); ok {
		uploadDir = local.Dir()
	}

	foodRepo, userRepo := repositories(cfg.Database.Driver, db)
	foodSvc := service.NewFoodService(assets, foodRepo)
	authSvc := service.NewAuthService(userRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             maxBodyBytes,
		DisableStartupMessage: cfg.Env == "production",
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.CORS(cfg.CORSAllowOrigins))
	app.Use(otelfiber.Middleware())
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:        db,
		Foods:     foodSvc,
		Auth:      authSvc,
		Assets:    assets,
		UploadDir: uploadDir,
		Gatherer:  reg,
		Log:       log,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info("shutting_down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server_starting", zap.String("addr", addr), zap.String("public_base_url", cfg.PublicBaseURL))
	if err := app.Listen(addr); err != nil {
		log.Error("server_stopped", zap.Error(err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing_shutdown_failed", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("database_close_failed", zap.Error(err))
	}
}

func repositories(driver string, db *sql.DB) (repository.FoodRepository, repository.UserRepository) {
	if driver == database.DriverPostgres {
		return postgres.NewFoodPostgres(db), postgres.NewUserPostgres(db)
	}
	return mysql.NewFoodMySQL(db), mysql.NewUserMySQL(db)
}
