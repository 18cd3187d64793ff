package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"jan-server/services/chat-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies the chat schema: users, chats, the chat_members join
// table and messages.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.SetupJoinTable(&entities.Chat{}, "Users", &entities.ChatMember{}); err != nil {
		return fmt.Errorf("setup chat members join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.User{}, "Chats", &entities.ChatMember{}); err != nil {
		return fmt.Errorf("setup user chats join table: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Chat{},
		&entities.ChatMember{},
		&entities.Message{},
	); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
