package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jan-server/services/chat-api/internal/domain/model"
	domain "jan-server/services/chat-api/internal/domain/user"
	"jan-server/services/chat-api/internal/infrastructure/database"
	"jan-server/services/chat-api/internal/infrastructure/database/entities"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

const msgUserNotFound = "User not found"

// PostgresRepository persists users via GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and assigns its id.
func (r *PostgresRepository) Create(ctx context.Context, u *model.User) error {
	row := entities.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return database.StoreError(ctx, err, "failed to create user", "user-create-db-error")
	}
	u.ID = row.ID
	return nil
}

// FindByID fetches a user and the relations selected by opts.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint, opts domain.FindOptions) (*model.User, error) {
	var row entities.User
	if err := withRelations(r.db.WithContext(ctx), opts).First(&row, id).Error; err != nil {
		return nil, notFoundOr(ctx, err, "failed to fetch user", "user-find-db-error")
	}
	return row.EtoD(), nil
}

// FindAll lists every user ordered by id.
func (r *PostgresRepository) FindAll(ctx context.Context, opts domain.FindOptions) ([]*model.User, error) {
	var rows []entities.User
	if err := withRelations(r.db.WithContext(ctx), opts).Order("users.id").Find(&rows).Error; err != nil {
		return nil, database.StoreError(ctx, err, "failed to list users", "user-list-db-error")
	}

	result := make([]*model.User, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// Exists reports whether a user with the id exists.
func (r *PostgresRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, database.StoreError(ctx, err, "failed to check user", "user-exists-db-error")
	}
	return count > 0, nil
}

// Update applies the non-nil fields of patch and returns the stored user.
func (r *PostgresRepository) Update(ctx context.Context, id uint, patch domain.Patch) (*model.User, error) {
	var row entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.ForUpdate(tx).First(&row, id).Error; err != nil {
			return notFoundOr(ctx, err, "failed to fetch user", "user-update-find-db-error")
		}
		if patch.IsEmpty() {
			return nil
		}

		updates := map[string]any{}
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.Email != nil {
			updates["email"] = *patch.Email
		}
		if patch.Date != nil {
			updates["date"] = *patch.Date
		}

		if err := tx.Model(&entities.User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return database.StoreError(ctx, err, "failed to update user", "user-update-db-error")
		}
		if err := tx.First(&row, id).Error; err != nil {
			return database.StoreError(ctx, err, "failed to reload user", "user-update-reload-db-error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.EtoD(), nil
}

// Delete removes the user and its chat memberships and returns the removed row.
// Authored messages are left to the store's foreign key rules.
func (r *PostgresRepository) Delete(ctx context.Context, id uint) (*model.User, error) {
	var row entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.ForUpdate(tx).First(&row, id).Error; err != nil {
			return notFoundOr(ctx, err, "failed to fetch user", "user-delete-find-db-error")
		}
		if err := tx.Where("user_id = ?", id).Delete(&entities.ChatMember{}).Error; err != nil {
			return database.StoreError(ctx, err, "failed to remove user memberships", "user-delete-members-db-error")
		}
		if err := tx.Delete(&entities.User{}, id).Error; err != nil {
			return database.StoreError(ctx, err, "failed to delete user", "user-delete-db-error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.EtoD(), nil
}

func withRelations(q *gorm.DB, opts domain.FindOptions) *gorm.DB {
	if opts.IncludeChats {
		q = q.Preload("Chats", orderBy("chats.id"))
	}
	if opts.IncludeMessages {
		q = q.Preload("Messages", orderBy("messages.id"))
		if opts.IncludeReplies {
			q = q.Preload("Messages.Replies", orderBy("messages.id"))
		}
	}
	return q
}

func orderBy(column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column)
	}
}

func notFoundOr(ctx context.Context, err error, message, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformerrors.NotFound(ctx, platformerrors.LayerRepository, msgUserNotFound, "user-not-found")
	}
	return database.StoreError(ctx, err, message, code)
}
