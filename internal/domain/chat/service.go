package chat

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"jan-server/services/chat-api/internal/domain/model"
)

// Service describes the business logic surface for chats and membership.
type Service interface {
	Create(ctx context.Context, userIDs []uint) (*model.Chat, error)
	Get(ctx context.Context, id uint) (*model.Chat, error)
	AddUser(ctx context.Context, chatID, userID uint) (*model.Chat, error)
	AddUsers(ctx context.Context, chatID uint, userIDs []uint) (*model.Chat, error)
	RemoveUser(ctx context.Context, chatID, userID uint) (*model.Chat, error)
	RemoveUsers(ctx context.Context, chatID uint, userIDs []uint) (*model.Chat, error)
	Delete(ctx context.Context, id uint) (*model.Chat, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the chat service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "chat-service").Logger(),
	}
}

func (s *service) Create(ctx context.Context, userIDs []uint) (*model.Chat, error) {
	c, err := s.repo.Create(ctx, lo.Uniq(userIDs))
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("chat_id", c.ID).Int("members", len(c.Users)).Msg("chat created")
	return c, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.Chat, error) {
	return s.repo.FindByID(ctx, id, FindOptions{IncludeUsers: true, IncludeMessages: true})
}

func (s *service) AddUser(ctx context.Context, chatID, userID uint) (*model.Chat, error) {
	return s.updateMembers(ctx, chatID, "add-user", addSingle(ctx, userID))
}

func (s *service) AddUsers(ctx context.Context, chatID uint, userIDs []uint) (*model.Chat, error) {
	return s.updateMembers(ctx, chatID, "add-users", addMany(userIDs))
}

func (s *service) RemoveUser(ctx context.Context, chatID, userID uint) (*model.Chat, error) {
	return s.updateMembers(ctx, chatID, "remove-user", removeSingle(ctx, userID))
}

func (s *service) RemoveUsers(ctx context.Context, chatID uint, userIDs []uint) (*model.Chat, error) {
	return s.updateMembers(ctx, chatID, "remove-users", removeMany(ctx, userIDs))
}

func (s *service) Delete(ctx context.Context, id uint) (*model.Chat, error) {
	c, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("chat_id", id).Msg("chat deleted")
	return c, nil
}

func (s *service) updateMembers(ctx context.Context, chatID uint, op string, plan MembershipPlanner) (*model.Chat, error) {
	c, err := s.repo.UpdateMembers(ctx, chatID, plan)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("chat_id", chatID).Str("op", op).Int("members", len(c.Users)).Msg("chat membership updated")
	return c, nil
}
