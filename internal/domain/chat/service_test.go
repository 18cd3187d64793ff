package chat_test

import (
	"context"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-api/internal/domain/chat"
	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

// memoryRepository keeps chat membership as an adjacency map.
type memoryRepository struct {
	users   map[uint]bool
	members map[uint][]uint
	nextID  uint
}

func newMemoryRepository(userIDs ...uint) *memoryRepository {
	users := make(map[uint]bool, len(userIDs))
	for _, id := range userIDs {
		users[id] = true
	}
	return &memoryRepository{users: users, members: map[uint][]uint{}}
}

func (r *memoryRepository) Create(ctx context.Context, memberIDs []uint) (*model.Chat, error) {
	for _, id := range memberIDs {
		if !r.users[id] {
			return nil, platformerrors.Validation(ctx, platformerrors.LayerRepository, "User not found", "test-user-not-found")
		}
	}
	r.nextID++
	r.members[r.nextID] = slices.Clone(memberIDs)
	return r.chat(r.nextID), nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uint, _ chat.FindOptions) (*model.Chat, error) {
	if _, ok := r.members[id]; !ok {
		return nil, platformerrors.NotFound(ctx, platformerrors.LayerRepository, "Chat not found", "test-chat-not-found")
	}
	return r.chat(id), nil
}

func (r *memoryRepository) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.members[id]
	return ok, nil
}

func (r *memoryRepository) UpdateMembers(ctx context.Context, chatID uint, plan chat.MembershipPlanner) (*model.Chat, error) {
	current, ok := r.members[chatID]
	if !ok {
		return nil, platformerrors.NotFound(ctx, platformerrors.LayerRepository, "Chat not found", "test-chat-not-found")
	}
	change, err := plan(slices.Clone(current))
	if err != nil {
		return nil, err
	}
	for _, id := range change.Add {
		if !r.users[id] {
			return nil, platformerrors.Validation(ctx, platformerrors.LayerRepository, "User not found", "test-user-not-found")
		}
	}
	next := lo.Without(current, change.Remove...)
	r.members[chatID] = append(next, change.Add...)
	return r.chat(chatID), nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uint) (*model.Chat, error) {
	c, err := r.FindByID(ctx, id, chat.FindOptions{})
	if err != nil {
		return nil, err
	}
	delete(r.members, id)
	return c, nil
}

func (r *memoryRepository) chat(id uint) *model.Chat {
	users := make([]model.User, 0, len(r.members[id]))
	for _, uid := range r.members[id] {
		users = append(users, model.User{ID: uid})
	}
	return &model.Chat{ID: id, Users: users}
}

func TestService_CreateCollapsesDuplicateIDs(t *testing.T) {
	svc := chat.NewService(newMemoryRepository(1, 2), zerolog.Nop())

	c, err := svc.Create(context.Background(), []uint{1, 2, 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2}, c.MemberIDs())
}

func TestService_CreateRejectsUnknownUser(t *testing.T) {
	svc := chat.NewService(newMemoryRepository(1), zerolog.Nop())

	_, err := svc.Create(context.Background(), []uint{1, 5})
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestService_MembershipLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository(1, 2, 3)
	svc := chat.NewService(repo, zerolog.Nop())

	c, err := svc.Create(ctx, []uint{1})
	require.NoError(t, err)

	_, err = svc.AddUser(ctx, c.ID, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User already in the chat")
	assert.Equal(t, []uint{1}, repo.members[c.ID], "rejected add leaves membership unchanged")

	c, err = svc.AddUser(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2}, c.MemberIDs())

	c, err = svc.AddUsers(ctx, c.ID, []uint{2, 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, c.MemberIDs())

	_, err = svc.RemoveUsers(ctx, c.ID, []uint{9, 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "None of the specified users are in the chat")
	assert.ElementsMatch(t, []uint{1, 2, 3}, repo.members[c.ID])

	c, err = svc.RemoveUser(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 3}, c.MemberIDs())

	_, err = svc.RemoveUser(ctx, c.ID, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not in the chat")

	c, err = svc.RemoveUsers(ctx, c.ID, []uint{1, 3, 7})
	require.NoError(t, err)
	assert.Empty(t, c.MemberIDs())
}

func TestService_MissingChat(t *testing.T) {
	ctx := context.Background()
	svc := chat.NewService(newMemoryRepository(1), zerolog.Nop())

	_, err := svc.Get(ctx, 42)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	_, err = svc.AddUser(ctx, 42, 1)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	_, err = svc.Delete(ctx, 42)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
