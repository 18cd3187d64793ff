package message

import (
	"context"

	"jan-server/services/chat-api/internal/domain/model"
)

// Filter scopes message lookups and bulk deletes. Nil fields are ignored.
type Filter struct {
	ID     *uint
	ChatID *uint
	UserID *uint
}

// Repository exposes persistence for messages.
type Repository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Message, error)
	ListAll(ctx context.Context) ([]*model.Message, error)
	// DeleteFirst removes the first message matching filter and returns it.
	DeleteFirst(ctx context.Context, filter Filter) (*model.Message, error)
	// DeleteMany removes every message matching filter and returns the count.
	DeleteMany(ctx context.Context, filter Filter) (int64, error)
}

// UserLookup reports whether a user exists.
type UserLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// ChatLookup reports whether a chat exists.
type ChatLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}
