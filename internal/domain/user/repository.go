package user

import (
	"context"
	"time"

	"jan-server/services/chat-api/internal/domain/model"
)

// FindOptions selects the relations loaded alongside a user.
type FindOptions struct {
	IncludeChats    bool
	IncludeMessages bool
	// IncludeReplies loads the direct replies of each authored message.
	IncludeReplies bool
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name  *string
	Email *string
	Date  *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Date == nil
}

// Repository exposes persistence for users.
type Repository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint, opts FindOptions) (*model.User, error)
	FindAll(ctx context.Context, opts FindOptions) ([]*model.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, patch Patch) (*model.User, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}
