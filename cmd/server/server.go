package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jan-server/services/chat-api/internal/config"
	"jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/domain/user"
	"jan-server/services/chat-api/internal/infrastructure/database"
	"jan-server/services/chat-api/internal/infrastructure/logger"
	"jan-server/services/chat-api/internal/infrastructure/observability"
	chatrepo "jan-server/services/chat-api/internal/infrastructure/repository/chat"
	messagerepo "jan-server/services/chat-api/internal/infrastructure/repository/message"
	userrepo "jan-server/services/chat-api/internal/infrastructure/repository/user"
	"jan-server/services/chat-api/internal/interfaces/httpserver"
)

// @title Chat API
// @version 1.0
// @description Users, chats with membership management, and threaded messages
// @BasePath /
type Application struct {
	httpServer *httpserver.HttpServer
	db         *gorm.DB
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, db *gorm.DB, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		db:         db,
		log:        log,
	}
}

// Start serves HTTP until ctx is cancelled, then closes the connection pool.
func (a *Application) Start(ctx context.Context) error {
	defer func() {
		if err := database.Close(a.db); err != nil {
			a.log.Error().Err(err).Msg("close database")
		}
	}()
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(newDatabaseConfig(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := database.AutoMigrate(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	userRepository := userrepo.NewPostgresRepository(db)
	chatRepository := chatrepo.NewPostgresRepository(db)
	messageRepository := messagerepo.NewPostgresRepository(db)

	userService := user.NewService(userRepository, log)
	chatService := chat.NewService(chatRepository, log)
	messageService := message.NewService(messageRepository, userRepository, chatRepository, log)

	httpServer := httpserver.New(cfg, log, db, userService, chatService, messageService)
	app := NewApplication(httpServer, db, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	level := gormlogger.Warn
	if cfg.DBLogQueries {
		level = gormlogger.Info
	}
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        level,
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
