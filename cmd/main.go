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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/felipemarinho/ewallet/internal/handlers"
	"github.com/felipemarinho/ewallet/internal/jwt"
	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/providers"
	"github.com/felipemarinho/ewallet/internal/repositories"
	"github.com/felipemarinho/ewallet/internal/services"

	_ "github.com/felipemarinho/ewallet/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title eWallet API
// @version 1.0.0
// @description Personal finance backend for tracking credit-card bills, debtors and split shares
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

// config carries every runtime setting of the service.
type config struct {
	AppHost  string
	AppPort  string
	AppURL   string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	UserCacheExp  time.Duration

	KafkaAddr  string
	KafkaTopic string

	JWTSecretKey  string
	JWTExp        time.Duration
	ResetTokenExp time.Duration

	MailProvider string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	StorageProvider    string
	S3Endpoint         string
	S3AccessKey        string
	S3SecretKey        string
	S3Bucket           string
	S3UseSSL           bool
	UsersAvatarsFolder string
}

// parseConfig loads environment variables from a file and returns the
// application configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var cfg config
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.AppURL = getEnv("APP_URL", fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort))
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "ewallet")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return cfg, err
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, err
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	userCacheExpSecond, err := strconv.Atoi(getEnv("USER_CACHE_EXP_SECOND", "300"))
	if err != nil {
		return cfg, err
	}
	cfg.UserCacheExp = time.Duration(userCacheExpSecond) * time.Second

	// Kafka config; an empty address disables event publishing
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "bill-events")

	// JWT and reset token config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400"))
	if err != nil {
		return cfg, err
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second
	resetExpMinute, err := strconv.Atoi(getEnv("RESET_PASSWORD_TOKEN_EXP_MINUTE", "30"))
	if err != nil {
		return cfg, err
	}
	cfg.ResetTokenExp = time.Duration(resetExpMinute) * time.Minute

	// Mail config
	cfg.MailProvider = getEnv("MAIL_PROVIDER", "fake")
	cfg.SMTPHost = getEnv("SMTP_HOST", "localhost")
	if cfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return cfg, err
	}
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")

	// Storage config
	cfg.StorageProvider = getEnv("STORAGE_PROVIDER", "fake")
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "localhost:9000")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3Bucket = getEnv("S3_BUCKET", "ewallet")
	cfg.S3UseSSL = getEnv("S3_USE_SSL", "false") == "true"
	cfg.UsersAvatarsFolder = getEnv("USERS_AVATARS_FOLDER", "users-avatars")

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, providers and the HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for bill events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer configured for topic %s", cfg.KafkaTopic)
	}

	// Mail provider
	var mailer services.Mailer
	switch cfg.MailProvider {
	case "smtp":
		mailer = providers.NewSMTPMailProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	default:
		mailer = providers.NewFakeMailProvider()
	}

	// Storage provider
	var storage services.FileStorage
	switch cfg.StorageProvider {
	case "s3":
		storage, err = providers.NewS3StorageProvider(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
		if err != nil {
			logger.Log.Errorw("S3 connection error", "error", err)
			return err
		}
	default:
		storage = providers.NewFakeStorageProvider()
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	userCache := repositories.NewUserCacheRepository(rdb, cfg.UserCacheExp)
	resetTokenReadRepo := repositories.NewResetTokenReadRepository(db)
	resetTokenWriteRepo := repositories.NewResetTokenWriteRepository(db)
	debtorReadRepo := repositories.NewDebtorReadRepository(db)
	debtorWriteRepo := repositories.NewDebtorWriteRepository(db)
	creditCardReadRepo := repositories.NewCreditCardReadRepository(db)
	creditCardWriteRepo := repositories.NewCreditCardWriteRepository(db)
	billReadRepo := repositories.NewBillReadRepository(db)
	billWriteRepo := repositories.NewBillWriteRepository(db)
	billDebtorReadRepo := repositories.NewBillDebtorReadRepository(db)
	billDebtorWriteRepo := repositories.NewBillDebtorWriteRepository(db)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo, userCache, storage, cfg.UsersAvatarsFolder)
	authService := services.NewAuthService(userService, userWriteRepo, resetTokenReadRepo, resetTokenWriteRepo,
		jwtSvc, mailer, cfg.ResetTokenExp, cfg.AppURL)
	debtorService := services.NewDebtorService(debtorReadRepo, debtorWriteRepo)
	creditCardService := services.NewCreditCardService(creditCardReadRepo, creditCardWriteRepo)
	billService := services.NewBillService(billReadRepo, billWriteRepo, billDebtorReadRepo, billDebtorWriteRepo,
		creditCardReadRepo, debtorReadRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/auth/sign-up", handlers.NewSignUpHandler(authService))
	r.Post("/auth/sign-in", handlers.NewSignInHandler(authService))
	r.Post("/auth/forgot-password", handlers.NewForgotPasswordHandler(authService))
	r.Post("/auth/reset-password", handlers.NewResetPasswordHandler(authService))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Get("/users/me", handlers.NewMeHandler(userService))
		r.Put("/users/profile", handlers.NewUpdateProfileHandler(userService))
		r.Patch("/users/profile/picture", handlers.NewUploadPictureHandler(userService))
		r.Patch("/users/account/password", handlers.NewChangePasswordHandler(userService))
		r.Delete("/users/account", handlers.NewDeleteAccountHandler(userService))

		r.Get("/users/debtors", handlers.NewListDebtorsHandler(debtorService))
		r.Post("/users/debtors", handlers.NewCreateDebtorHandler(debtorService))
		r.Get("/users/debtors/{id}", handlers.NewGetDebtorHandler(debtorService))
		r.Put("/users/debtors/{id}", handlers.NewUpdateDebtorHandler(debtorService))
		r.Delete("/users/debtors/{id}", handlers.NewDeleteDebtorHandler(debtorService))

		r.Get("/users/credit-cards", handlers.NewListCreditCardsHandler(creditCardService))
		r.Post("/users/credit-cards", handlers.NewCreateCreditCardHandler(creditCardService))
		r.Get("/users/credit-cards/{id}", handlers.NewGetCreditCardHandler(creditCardService))
		r.Put("/users/credit-cards/{id}", handlers.NewUpdateCreditCardHandler(creditCardService))
		r.Delete("/users/credit-cards/{id}", handlers.NewDeleteCreditCardHandler(creditCardService))

		r.Get("/bills", handlers.NewListBillsHandler(billService))
		r.Post("/bills", handlers.NewCreateBillHandler(billService))
		r.Put("/bills/{id}", handlers.NewUpdateBillHandler(billService))
		r.Patch("/bills/{id}/paid", handlers.NewUpdateBillPaidHandler(billService))
		r.Delete("/bills/{id}", handlers.NewDeleteBillHandler(billService))
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
