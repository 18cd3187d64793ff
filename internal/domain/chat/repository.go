package chat

import (
	"context"

	"jan-server/services/chat-api/internal/domain/model"
)

// FindOptions selects the relations loaded alongside a chat.
type FindOptions struct {
	IncludeUsers    bool
	IncludeMessages bool
}

// MembershipChange is the delta applied to a chat's member set.
type MembershipChange struct {
	Add    []uint
	Remove []uint
}

// IsEmpty reports whether the change leaves the member set untouched.
func (c MembershipChange) IsEmpty() bool {
	return len(c.Add) == 0 && len(c.Remove) == 0
}

// MembershipPlanner decides the change to apply given the current member ids.
// Returning an error aborts the update without touching the member set.
type MembershipPlanner func(members []uint) (MembershipChange, error)

// Repository exposes persistence for chats and their membership.
type Repository interface {
	// Create inserts a chat whose members are exactly memberIDs. Every id must
	// reference an existing user.
	Create(ctx context.Context, memberIDs []uint) (*model.Chat, error)
	FindByID(ctx context.Context, id uint, opts FindOptions) (*model.Chat, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// UpdateMembers reads the member set, asks plan for a change and applies it
	// atomically. The returned chat has its users loaded.
	UpdateMembers(ctx context.Context, chatID uint, plan MembershipPlanner) (*model.Chat, error)
	Delete(ctx context.Context, id uint) (*model.Chat, error)
}
