package message_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "jan-server/services/chat-api/internal/domain/message"
	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/infrastructure/database/databasetest"
	"jan-server/services/chat-api/internal/infrastructure/database/entities"
	repo "jan-server/services/chat-api/internal/infrastructure/repository/message"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

type fixture struct {
	db    *gorm.DB
	repo  *repo.PostgresRepository
	users []uint
	chats []uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := databasetest.Open(t)
	f := &fixture{db: db, repo: repo.NewPostgresRepository(db)}
	for i := 0; i < 2; i++ {
		u := entities.User{Name: fmt.Sprintf("user%d", i), Email: fmt.Sprintf("user%d@x.com", i), Date: time.Now().UTC()}
		require.NoError(t, db.Create(&u).Error)
		f.users = append(f.users, u.ID)

		c := entities.Chat{}
		require.NoError(t, db.Create(&c).Error)
		f.chats = append(f.chats, c.ID)
	}
	return f
}

func (f *fixture) post(t *testing.T, chatID, userID uint, content string, parentID *uint) *model.Message {
	t.Helper()
	m := &model.Message{Content: content, SentAt: time.Now().UTC(), ChatID: chatID, UserID: userID, ParentID: parentID}
	require.NoError(t, f.repo.Create(context.Background(), m))
	return m
}

func ptr(v uint) *uint { return &v }

func TestPostgresRepository_CreateAndFind(t *testing.T) {
	f := newFixture(t)
	m := f.post(t, f.chats[0], f.users[0], "hello", nil)
	require.NotZero(t, m.ID)

	found, err := f.repo.FindByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Content)
	assert.Nil(t, found.ParentID)

	_, err = f.repo.FindByID(context.Background(), m.ID+10)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestPostgresRepository_Lists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.post(t, f.chats[0], f.users[0], "a", nil)
	f.post(t, f.chats[1], f.users[1], "b", nil)
	f.post(t, f.chats[1], f.users[0], "c", nil)

	mine, err := f.repo.ListByUser(ctx, f.users[0])
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a", mine[0].Content)
	require.NotNil(t, mine[0].Chat)
	assert.Equal(t, f.chats[0], mine[0].Chat.ID)
	assert.Nil(t, mine[0].User)

	all, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, m := range all {
		require.NotNil(t, m.User)
		require.NotNil(t, m.Chat)
		assert.Equal(t, m.UserID, m.User.ID)
		assert.Equal(t, m.ChatID, m.Chat.ID)
	}

	none, err := f.repo.ListByUser(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestPostgresRepository_DeleteFirstMatchesEveryField(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	m := f.post(t, f.chats[0], f.users[0], "hello", nil)

	_, err := f.repo.DeleteFirst(ctx, domain.Filter{ID: &m.ID, ChatID: &f.chats[1], UserID: &f.users[0]})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	_, err = f.repo.DeleteFirst(ctx, domain.Filter{ID: &m.ID, ChatID: &f.chats[0], UserID: &f.users[1]})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	deleted, err := f.repo.DeleteFirst(ctx, domain.Filter{ID: &m.ID, ChatID: &f.chats[0], UserID: &f.users[0]})
	require.NoError(t, err)
	assert.Equal(t, m.ID, deleted.ID)

	_, err = f.repo.FindByID(ctx, m.ID)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestPostgresRepository_DeleteDetachesReplies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	original := f.post(t, f.chats[0], f.users[0], "question", nil)
	reply := f.post(t, f.chats[0], f.users[1], "answer", ptr(original.ID))

	_, err := f.repo.DeleteFirst(ctx, domain.Filter{ID: &original.ID, ChatID: &f.chats[0], UserID: &f.users[0]})
	require.NoError(t, err)

	kept, err := f.repo.FindByID(ctx, reply.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.ParentID)
}

func TestPostgresRepository_DeleteManyByUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	question := f.post(t, f.chats[0], f.users[0], "a", nil)
	f.post(t, f.chats[1], f.users[0], "b", nil)
	answer := f.post(t, f.chats[0], f.users[1], "c", ptr(question.ID))

	count, err := f.repo.DeleteMany(ctx, domain.Filter{UserID: &f.users[0]})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, answer.ID, remaining[0].ID)
	assert.Nil(t, remaining[0].ParentID)
}

func TestPostgresRepository_DeleteManyByChat(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.post(t, f.chats[0], f.users[0], "a", nil)
	f.post(t, f.chats[0], f.users[1], "b", nil)
	other := f.post(t, f.chats[1], f.users[0], "c", nil)

	count, err := f.repo.DeleteMany(ctx, domain.Filter{ChatID: &f.chats[0]})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	remaining, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	count, err = f.repo.DeleteMany(ctx, domain.Filter{ChatID: &f.chats[0]})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostgresRepository_DeleteManyRequiresFilter(t *testing.T) {
	f := newFixture(t)
	f.post(t, f.chats[0], f.users[0], "a", nil)

	_, err := f.repo.DeleteMany(context.Background(), domain.Filter{})
	require.Error(t, err)

	all, err := f.repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
