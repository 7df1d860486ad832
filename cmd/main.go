package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-goal-tracker/internal/handlers"
	jwtpkg "github.com/sbilibin2017/gw-goal-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/sbilibin2017/gw-goal-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-goal-tracker/internal/migrations"
	"github.com/sbilibin2017/gw-goal-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-goal-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-goal-tracker API
// @version 1.0.0
// @description Microservice for personal goal tracking with JWT auth
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// config holds all application configuration parsed from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURI    string
	PgMaxOpenConns int
	PgMaxIdleConns int

	JWTSecretKey string
	JWTExpSecond int

	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	GoalCacheExpSecond int

	KafkaAddr  string
	KafkaTopic string
}

// parseConfig loads environment variables from a file and returns the
// application configuration. The JWT signing secret and the database
// connection string are required: the process refuses to start without
// them.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{
		AppHost:       getEnv("APP_HOST", "localhost"),
		AppPort:       getEnv("APP_PORT", "8080"),
		LogLevel:      getEnv("APP_LOG_LEVEL", "info"),
		DatabaseURI:   getEnv("DATABASE_URI", ""),
		JWTSecretKey:  getEnv("JWT_SECRET", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		KafkaAddr:     getEnv("KAFKA_ADDR", ""),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "goal-tracker-events"),
	}

	if cfg.DatabaseURI == "" {
		return nil, errors.New("DATABASE_URI environment variable is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	var err error
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	if cfg.GoalCacheExpSecond, err = strconv.Atoi(getEnv("GOAL_CACHE_EXP_SECOND", "60")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, optional Redis cache and Kafka
// writer, and the HTTP server. It applies migrations, sets up routes
// and middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURI)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis when configured; the goal list cache is skipped otherwise.
	var goalCache services.GoalListCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()
		goalCache = repositories.NewGoalListCacheRepository(rdb, time.Duration(cfg.GoalCacheExpSecond)*time.Second)
	}

	// Kafka writer when configured; event publishing is skipped otherwise.
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
	}

	// Initialize JWT service
	jwt := jwtpkg.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	goalReadRepo := repositories.NewGoalReadRepository(db)
	goalWriteRepo := repositories.NewGoalWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt, kafkaWriter)
	goalService := services.NewGoalService(goalReadRepo, goalWriteRepo, goalCache, kafkaWriter)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(authService)
	listGoalsHandler := handlers.NewListGoalsHandler(goalService)
	createGoalHandler := handlers.NewCreateGoalHandler(goalService)
	updateGoalHandler := handlers.NewUpdateGoalHandler(goalService)
	deleteGoalHandler := handlers.NewDeleteGoalHandler(goalService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware)
	r.NotFound(handlers.NewNotFoundHandler())

	// Public routes
	r.Post("/api/auth/register", registerHandler)
	r.Post("/api/auth/login", loginHandler)

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwt)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Put("/api/auth/user", updateProfileHandler)
		r.Get("/api/goals", listGoalsHandler)
		r.Post("/api/goals", createGoalHandler)
		r.Put("/api/goals/{goalID}", updateGoalHandler)
		r.Delete("/api/goals/{goalID}", deleteGoalHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
