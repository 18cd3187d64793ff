package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/infrastructure/database"
	"jan-server/services/chat-api/internal/infrastructure/database/entities"
	"jan-server/services/chat-api/internal/infrastructure/metrics"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

const msgChatNotFound = "Chat not found"

// PostgresRepository persists chats and the chat_members join table via GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a chat with memberIDs as its members.
func (r *PostgresRepository) Create(ctx context.Context, memberIDs []uint) (*model.Chat, error) {
	var out *model.Chat
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUsers(ctx, tx, memberIDs); err != nil {
			return err
		}

		row := entities.Chat{}
		if err := tx.Create(&row).Error; err != nil {
			return database.StoreError(ctx, err, "failed to create chat", "chat-create-db-error")
		}
		if err := insertMembers(ctx, tx, row.ID, memberIDs); err != nil {
			return err
		}

		loaded, err := load(ctx, tx, row.ID, domain.FindOptions{IncludeUsers: true})
		if err != nil {
			return err
		}
		out = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipChange(len(memberIDs), 0)
	return out, nil
}

// FindByID fetches a chat and the relations selected by opts.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint, opts domain.FindOptions) (*model.Chat, error) {
	return load(ctx, r.db.WithContext(ctx), id, opts)
}

// Exists reports whether a chat with the id exists.
func (r *PostgresRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Chat{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, database.StoreError(ctx, err, "failed to check chat", "chat-exists-db-error")
	}
	return count > 0, nil
}

// UpdateMembers locks the chat row, hands the current member ids to plan and
// applies the resulting change in the same transaction, so concurrent
// membership updates on one chat are serialized.
func (r *PostgresRepository) UpdateMembers(ctx context.Context, chatID uint, plan domain.MembershipPlanner) (*model.Chat, error) {
	var (
		out    *model.Chat
		change domain.MembershipChange
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row entities.Chat
		if err := database.ForUpdate(tx).First(&row, chatID).Error; err != nil {
			return notFoundOr(ctx, err, "failed to fetch chat", "chat-members-find-db-error")
		}

		var members []uint
		if err := tx.Model(&entities.ChatMember{}).
			Where("chat_id = ?", chatID).
			Order("user_id").
			Pluck("user_id", &members).Error; err != nil {
			return database.StoreError(ctx, err, "failed to read chat members", "chat-members-read-db-error")
		}

		var err error
		change, err = plan(members)
		if err != nil {
			return err
		}

		if !change.IsEmpty() {
			if err := requireUsers(ctx, tx, change.Add); err != nil {
				return err
			}
			if err := insertMembers(ctx, tx, chatID, change.Add); err != nil {
				return err
			}
			if err := removeMembers(ctx, tx, chatID, change.Remove); err != nil {
				return err
			}
		}

		out, err = load(ctx, tx, chatID, domain.FindOptions{IncludeUsers: true})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordMembershipChange(len(change.Add), len(change.Remove))
	return out, nil
}

// Delete removes the chat and its memberships and returns the removed row.
// Messages posted to the chat are left to the store's foreign key rules.
func (r *PostgresRepository) Delete(ctx context.Context, id uint) (*model.Chat, error) {
	var row entities.Chat
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.ForUpdate(tx).First(&row, id).Error; err != nil {
			return notFoundOr(ctx, err, "failed to fetch chat", "chat-delete-find-db-error")
		}
		if err := tx.Where("chat_id = ?", id).Delete(&entities.ChatMember{}).Error; err != nil {
			return database.StoreError(ctx, err, "failed to remove chat members", "chat-delete-members-db-error")
		}
		if err := tx.Delete(&entities.Chat{}, id).Error; err != nil {
			return database.StoreError(ctx, err, "failed to delete chat", "chat-delete-db-error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.EtoD(), nil
}

func load(ctx context.Context, q *gorm.DB, id uint, opts domain.FindOptions) (*model.Chat, error) {
	if opts.IncludeUsers {
		q = q.Preload("Users", func(db *gorm.DB) *gorm.DB { return db.Order("users.id") })
	}
	if opts.IncludeMessages {
		q = q.Preload("Messages", func(db *gorm.DB) *gorm.DB { return db.Order("messages.id") })
	}

	var row entities.Chat
	if err := q.First(&row, id).Error; err != nil {
		return nil, notFoundOr(ctx, err, "failed to fetch chat", "chat-find-db-error")
	}
	return row.EtoD(), nil
}

// requireUsers fails with a validation error naming the ids that do not
// reference an existing user.
func requireUsers(ctx context.Context, tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	var found []uint
	if err := tx.Model(&entities.User{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return database.StoreError(ctx, err, "failed to check users", "chat-users-check-db-error")
	}

	if missing := lo.Without(ids, found...); len(missing) > 0 {
		return platformerrors.Validation(ctx, platformerrors.LayerRepository,
			fmt.Sprintf("User not found: %v", missing), "chat-user-not-found")
	}
	return nil
}

func insertMembers(ctx context.Context, tx *gorm.DB, chatID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	rows := lo.Map(userIDs, func(userID uint, _ int) entities.ChatMember {
		return entities.ChatMember{ChatID: chatID, UserID: userID}
	})
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return database.StoreError(ctx, err, "failed to add chat members", "chat-members-insert-db-error")
	}
	return nil
}

func removeMembers(ctx context.Context, tx *gorm.DB, chatID uint, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	if err := tx.Where("chat_id = ? AND user_id IN ?", chatID, userIDs).Delete(&entities.ChatMember{}).Error; err != nil {
		return database.StoreError(ctx, err, "failed to remove chat members", "chat-members-delete-db-error")
	}
	return nil
}

func notFoundOr(ctx context.Context, err error, message, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformerrors.NotFound(ctx, platformerrors.LayerRepository, msgChatNotFound, "chat-not-found")
	}
	return database.StoreError(ctx, err, message, code)
}
