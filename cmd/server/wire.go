//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"jan-server/services/chat-api/internal/config"
	"jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/domain/user"
	"jan-server/services/chat-api/internal/infrastructure/database"
	"jan-server/services/chat-api/internal/infrastructure/logger"
	chatrepo "jan-server/services/chat-api/internal/infrastructure/repository/chat"
	messagerepo "jan-server/services/chat-api/internal/infrastructure/repository/message"
	userrepo "jan-server/services/chat-api/internal/infrastructure/repository/user"
	"jan-server/services/chat-api/internal/interfaces/httpserver"
)

var userSet = wire.NewSet(
	userrepo.NewPostgresRepository,
	wire.Bind(new(user.Repository), new(*userrepo.PostgresRepository)),
	wire.Bind(new(message.UserLookup), new(*userrepo.PostgresRepository)),
	user.NewService,
)

var chatSet = wire.NewSet(
	chatrepo.NewPostgresRepository,
	wire.Bind(new(chat.Repository), new(*chatrepo.PostgresRepository)),
	wire.Bind(new(message.ChatLookup), new(*chatrepo.PostgresRepository)),
	chat.NewService,
)

var messageSet = wire.NewSet(
	messagerepo.NewPostgresRepository,
	wire.Bind(new(message.Repository), new(*messagerepo.PostgresRepository)),
	message.NewService,
)

// BuildApplication assembles the chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		userSet,
		chatSet,
		messageSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
