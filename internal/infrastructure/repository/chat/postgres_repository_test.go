package chat_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/infrastructure/database/databasetest"
	"jan-server/services/chat-api/internal/infrastructure/database/entities"
	repo "jan-server/services/chat-api/internal/infrastructure/repository/chat"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

func seedUsers(t *testing.T, db *gorm.DB, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		u := entities.User{
			Name:  "user",
			Email: fmt.Sprintf("user%d@x.com", i),
			Date:  time.Now().UTC(),
		}
		require.NoError(t, db.Create(&u).Error)
		ids = append(ids, u.ID)
	}
	return ids
}

func members(t *testing.T, db *gorm.DB, chatID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&entities.ChatMember{}).Where("chat_id = ?", chatID).Order("user_id").Pluck("user_id", &ids).Error)
	return ids
}

func addAll(ids ...uint) domain.MembershipPlanner {
	return func([]uint) (domain.MembershipChange, error) {
		return domain.MembershipChange{Add: ids}, nil
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 2)

	c, err := r.Create(ctx, users)
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.ElementsMatch(t, users, c.MemberIDs())

	empty, err := r.Create(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty.Users)
	assert.Empty(t, empty.Users)
}

func TestPostgresRepository_CreateRejectsUnknownUsers(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 1)

	_, err := r.Create(ctx, []uint{users[0], 999})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "User not found")

	var chats int64
	require.NoError(t, db.Model(&entities.Chat{}).Count(&chats).Error)
	assert.Zero(t, chats, "failed create leaves no chat behind")
}

func TestPostgresRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 1)

	c, err := r.Create(ctx, users)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.Message{Content: "hi", SentAt: time.Now().UTC(), ChatID: c.ID, UserID: users[0]}).Error)

	found, err := r.FindByID(ctx, c.ID, domain.FindOptions{IncludeUsers: true, IncludeMessages: true})
	require.NoError(t, err)
	assert.Len(t, found.Users, 1)
	require.Len(t, found.Messages, 1)
	assert.Equal(t, "hi", found.Messages[0].Content)

	_, err = r.FindByID(ctx, c.ID+1, domain.FindOptions{})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
	assert.Contains(t, err.Error(), "Chat not found")
}

func TestPostgresRepository_UpdateMembers(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 3)

	c, err := r.Create(ctx, users[:2])
	require.NoError(t, err)

	var seen []uint
	updated, err := r.UpdateMembers(ctx, c.ID, func(current []uint) (domain.MembershipChange, error) {
		seen = current
		return domain.MembershipChange{Add: []uint{users[2]}, Remove: []uint{users[0]}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, users[:2], seen)
	assert.ElementsMatch(t, users[1:], updated.MemberIDs())
	assert.Equal(t, users[1:], members(t, db, c.ID))
}

func TestPostgresRepository_UpdateMembersAbortsOnPlanError(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 1)

	c, err := r.Create(ctx, users)
	require.NoError(t, err)

	_, err = r.UpdateMembers(ctx, c.ID, func([]uint) (domain.MembershipChange, error) {
		return domain.MembershipChange{}, platformerrors.Validation(ctx, platformerrors.LayerDomain, "User already in the chat", "test")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already in the chat")
	assert.Equal(t, users, members(t, db, c.ID))

	_, err = r.UpdateMembers(ctx, c.ID, addAll(12345))
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
	assert.Equal(t, users, members(t, db, c.ID))

	_, err = r.UpdateMembers(ctx, c.ID+1, addAll(users[0]))
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestPostgresRepository_ConcurrentAddsKeepMembershipASet(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 2)

	c, err := r.Create(ctx, users[:1])
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.UpdateMembers(ctx, c.ID, func(current []uint) (domain.MembershipChange, error) {
				for _, id := range current {
					if id == users[1] {
						return domain.MembershipChange{}, nil
					}
				}
				return domain.MembershipChange{Add: []uint{users[1]}}, nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, users, members(t, db, c.ID))
}

func TestPostgresRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 2)

	c, err := r.Create(ctx, users)
	require.NoError(t, err)

	deleted, err := r.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, deleted.ID)
	assert.Empty(t, members(t, db, c.ID))

	ok, err := r.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.Delete(ctx, c.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestPostgresRepository_DeleteRefusedWithMessages(t *testing.T) {
	ctx := context.Background()
	db := databasetest.Open(t)
	r := repo.NewPostgresRepository(db)
	users := seedUsers(t, db, 1)

	c, err := r.Create(ctx, users)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.Message{Content: "hi", SentAt: time.Now().UTC(), ChatID: c.ID, UserID: users[0]}).Error)

	_, err = r.Delete(ctx, c.ID)
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation), err.Error())

	ok, err := r.Exists(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, users, members(t, db, c.ID))
}
