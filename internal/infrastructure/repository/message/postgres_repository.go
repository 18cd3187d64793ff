package message

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/infrastructure/database"
	"jan-server/services/chat-api/internal/infrastructure/database/entities"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

const msgMessageNotFound = "Message not found"

// PostgresRepository persists messages via GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the message and assigns its id.
func (r *PostgresRepository) Create(ctx context.Context, m *model.Message) error {
	row := entities.NewSchemaMessage(m)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return database.StoreError(ctx, err, "failed to create message", "message-create-db-error")
	}
	m.ID = row.ID
	return nil
}

// FindByID fetches a single message without relations.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var row entities.Message
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, notFoundOr(ctx, err, "failed to fetch message", "message-find-db-error")
	}
	return row.EtoD(), nil
}

// ListByUser returns the messages authored by userID with their chat.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uint) ([]*model.Message, error) {
	var rows []entities.Message
	err := r.db.WithContext(ctx).
		Preload("Chat").
		Where("user_id = ?", userID).
		Order("messages.id").
		Find(&rows).Error
	if err != nil {
		return nil, database.StoreError(ctx, err, "failed to list user messages", "message-list-user-db-error")
	}
	return toDomain(rows), nil
}

// ListAll returns every message with its author and chat.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*model.Message, error) {
	var rows []entities.Message
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Chat").
		Order("messages.id").
		Find(&rows).Error
	if err != nil {
		return nil, database.StoreError(ctx, err, "failed to list messages", "message-list-db-error")
	}
	return toDomain(rows), nil
}

// DeleteFirst removes the first message matching filter. Replies to it are
// kept and detached from their parent.
func (r *PostgresRepository) DeleteFirst(ctx context.Context, filter domain.Filter) (*model.Message, error) {
	var row entities.Message
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyFilter(database.ForUpdate(tx), filter).Order("messages.id").First(&row).Error; err != nil {
			return notFoundOr(ctx, err, "failed to fetch message", "message-delete-find-db-error")
		}
		if err := tx.Model(&entities.Message{}).
			Where("parent_id = ?", row.ID).
			Update("parent_id", nil).Error; err != nil {
			return database.StoreError(ctx, err, "failed to detach replies", "message-delete-detach-db-error")
		}
		if err := tx.Delete(&entities.Message{}, row.ID).Error; err != nil {
			return database.StoreError(ctx, err, "failed to delete message", "message-delete-db-error")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row.EtoD(), nil
}

// DeleteMany removes every message matching filter and returns how many rows
// went away. An empty filter is refused so a caller cannot wipe the table.
func (r *PostgresRepository) DeleteMany(ctx context.Context, filter domain.Filter) (int64, error) {
	if filter.ID == nil && filter.ChatID == nil && filter.UserID == nil {
		return 0, platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeInternal,
			"refusing to delete messages without a filter", nil, "message-delete-many-unscoped")
	}

	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doomed := applyFilter(tx.Model(&entities.Message{}), filter).Select("id")
		if err := tx.Model(&entities.Message{}).
			Where("parent_id IN (?)", doomed).
			Update("parent_id", nil).Error; err != nil {
			return database.StoreError(ctx, err, "failed to detach replies", "message-delete-many-detach-db-error")
		}

		res := applyFilter(tx, filter).Delete(&entities.Message{})
		if res.Error != nil {
			return database.StoreError(ctx, res.Error, "failed to delete messages", "message-delete-many-db-error")
		}
		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func applyFilter(q *gorm.DB, filter domain.Filter) *gorm.DB {
	if filter.ID != nil {
		q = q.Where("messages.id = ?", *filter.ID)
	}
	if filter.ChatID != nil {
		q = q.Where("messages.chat_id = ?", *filter.ChatID)
	}
	if filter.UserID != nil {
		q = q.Where("messages.user_id = ?", *filter.UserID)
	}
	return q
}

func toDomain(rows []entities.Message) []*model.Message {
	out := make([]*model.Message, len(rows))
	for i := range rows {
		out[i] = rows[i].EtoD()
	}
	return out
}

func notFoundOr(ctx context.Context, err error, message, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformerrors.NotFound(ctx, platformerrors.LayerRepository, msgMessageNotFound, "message-not-found")
	}
	return database.StoreError(ctx, err, message, code)
}
