package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/atria-app/web-mobile-connect/internal/handlers"
	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/middlewares"
	"github.com/atria-app/web-mobile-connect/internal/repositories"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "1.0.0" // Version of the service
	buildDate    = "N/A"   // Build date
	buildCommit  = "N/A"   // Git commit hash
)

// @title Web-Mobile Connect API
// @version 1.0.0
// @description Backend for web and mobile clients: users, status checks, stats and mobile sync
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		mongoURL, mongoDB, mongoTimeout,
		corsOrigins,
		redisAddr, redisDB, redisPassword, rateLimitRPM,
		kafkaBroker, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		mongoURL, mongoDB, mongoTimeout,
		corsOrigins,
		redisAddr, redisDB, redisPassword, rateLimitRPM,
		kafkaBroker, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, Mongo, CORS, Redis, and Kafka configuration. Redis and Kafka
// are optional: an empty address disables the feature.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	mongoURL, mongoDB string, mongoTimeout int,
	corsOrigins []string,
	redisAddr string, redisDB int, redisPassword string, rateLimitRPM int64,
	kafkaBroker, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// MongoDB config
	mongoURL = getEnv("MONGO_URL", "mongodb://localhost:27017")
	mongoDB = getEnv("MONGO_DB", "web_mobile_connect")
	if mongoTimeout, err = strconv.Atoi(getEnv("MONGO_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// CORS config
	corsOrigins = strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	// Redis config (rate limiting, optional)
	redisAddr = getEnv("REDIS_ADDR", "")
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	var rpm int
	if rpm, err = strconv.Atoi(getEnv("RATE_LIMIT_RPM", "120")); err != nil {
		return
	}
	rateLimitRPM = int64(rpm)

	// Kafka config (status check events, optional)
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "status-checks")

	return
}

// run initializes the logger, MongoDB, optional Redis and Kafka clients, and
// the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	mongoURL, mongoDB string, mongoTimeout int,
	corsOrigins []string,
	redisAddr string, redisDB int, redisPassword string, rateLimitRPM int64,
	kafkaBroker, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to MongoDB
	logger.Log.Infof("Connecting to MongoDB: %s", mongoURL)
	client, err := mongo.Connect(options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("MongoDB connection error: %w", err)
	}
	defer client.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(mongoTimeout)*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB ping failed: %w", err)
	}

	db := client.Database(mongoDB)

	// Connect to Redis when configured
	var rdb *redis.Client
	if redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
	}

	// Create Kafka writer when configured
	var eventWriter services.KafkaWriter
	if kafkaBroker != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Publishing status check events to %s topic %s", kafkaBroker, kafkaTopic)
		eventWriter = kafkaWriter
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	statusReadRepo := repositories.NewStatusCheckReadRepository(db)
	statusWriteRepo := repositories.NewStatusCheckWriteRepository(db)
	healthRepo := repositories.NewHealthReadRepository(db)

	if err := userWriteRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	statusService := services.NewStatusService(statusWriteRepo, statusReadRepo, eventWriter)
	statsService := services.NewStatsService(userReadRepo, statusReadRepo)
	syncService := services.NewSyncService(userReadRepo, userWriteRepo, statusReadRepo)
	healthService := services.NewHealthService(healthRepo)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	metrics := middlewares.NewMetrics(registry)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.NewRootHandler(buildVersion))
		r.Get("/health", handlers.NewHealthHandler(healthService))
		r.Get("/status", handlers.NewListStatusHandler(statusService))
		r.Get("/users", handlers.NewListUsersHandler(userService))
		r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
		r.Get("/stats", handlers.NewGetStatsHandler(statsService))

		// Write endpoints, rate limited when Redis is configured
		r.Group(func(r chi.Router) {
			if rdb != nil {
				r.Use(middlewares.RateLimitMiddleware(rdb, rateLimitRPM, time.Minute))
			}
			r.Post("/status", handlers.NewCreateStatusHandler(statusService))
			r.Post("/users", handlers.NewCreateUserHandler(userService))
			r.Put("/users/{id}/activity", handlers.NewTouchActivityHandler(userService))
			r.Post("/mobile/sync", handlers.NewMobileSyncHandler(syncService))
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
