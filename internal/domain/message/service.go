package message

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

const (
	msgChatNotFound          = "Chat not found"
	msgUserNotFound          = "User not found"
	msgOriginalNotFound      = "Original message not found"
	msgScopedMessageNotFound = "Message not found or does not belong to the specified chat and user"
	msgContentRequired       = "content is required"
)

// Service describes the business logic surface for messages.
type Service interface {
	Create(ctx context.Context, chatID, userID uint, content string) (*model.Message, error)
	Reply(ctx context.Context, parentID, userID uint, content string) (*model.Message, error)
	ListByUser(ctx context.Context, userID uint) ([]*model.Message, error)
	ListAll(ctx context.Context) ([]*model.Message, error)
	DeleteInChat(ctx context.Context, chatID, userID, messageID uint) (*model.Message, error)
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
	DeleteByChat(ctx context.Context, chatID uint) (int64, error)
}

type service struct {
	repo  Repository
	users UserLookup
	chats ChatLookup
	log   zerolog.Logger
	now   func() time.Time
}

// NewService wires the message service with its repository and the lookups
// used for existence checks.
func NewService(repo Repository, users UserLookup, chats ChatLookup, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		chats: chats,
		log:   log.With().Str("component", "message-service").Logger(),
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, chatID, userID uint, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, msgContentRequired, "message-create-content-required")
	}
	if err := s.requireChat(ctx, chatID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID, platformerrors.ErrorTypeNotFound); err != nil {
		return nil, err
	}

	msg := &model.Message{
		Content: content,
		SentAt:  s.now().UTC(),
		ChatID:  chatID,
		UserID:  userID,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Debug().Uint("message_id", msg.ID).Uint("chat_id", chatID).Msg("message created")
	return msg, nil
}

// Reply posts content as a reply to parentID. The reply always lives in the
// parent's chat.
func (s *service) Reply(ctx context.Context, parentID, userID uint, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, msgContentRequired, "message-reply-content-required")
	}

	parent, err := s.repo.FindByID(ctx, parentID)
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NotFound(ctx, platformerrors.LayerDomain, msgOriginalNotFound, "message-reply-parent-not-found")
		}
		return nil, err
	}
	if err := s.requireUser(ctx, userID, platformerrors.ErrorTypeValidation); err != nil {
		return nil, err
	}

	reply := &model.Message{
		Content:  content,
		SentAt:   s.now().UTC(),
		ChatID:   parent.ChatID,
		UserID:   userID,
		ParentID: &parent.ID,
	}
	if err := s.repo.Create(ctx, reply); err != nil {
		return nil, err
	}

	s.log.Debug().Uint("message_id", reply.ID).Uint("parent_id", parent.ID).Msg("reply created")
	return reply, nil
}

func (s *service) ListByUser(ctx context.Context, userID uint) ([]*model.Message, error) {
	if err := s.requireUser(ctx, userID, platformerrors.ErrorTypeNotFound); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*model.Message, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) DeleteInChat(ctx context.Context, chatID, userID, messageID uint) (*model.Message, error) {
	msg, err := s.repo.DeleteFirst(ctx, Filter{ID: &messageID, ChatID: &chatID, UserID: &userID})
	if err != nil {
		if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, platformerrors.NotFound(ctx, platformerrors.LayerDomain, msgScopedMessageNotFound, "message-delete-scoped-not-found")
		}
		return nil, err
	}

	s.log.Debug().Uint("message_id", messageID).Msg("message deleted")
	return msg, nil
}

func (s *service) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	if err := s.requireUser(ctx, userID, platformerrors.ErrorTypeNotFound); err != nil {
		return 0, err
	}

	count, err := s.repo.DeleteMany(ctx, Filter{UserID: &userID})
	if err != nil {
		return 0, err
	}

	s.log.Debug().Uint("user_id", userID).Int64("count", count).Msg("user messages deleted")
	return count, nil
}

func (s *service) DeleteByChat(ctx context.Context, chatID uint) (int64, error) {
	if err := s.requireChat(ctx, chatID); err != nil {
		return 0, err
	}

	count, err := s.repo.DeleteMany(ctx, Filter{ChatID: &chatID})
	if err != nil {
		return 0, err
	}

	s.log.Debug().Uint("chat_id", chatID).Int64("count", count).Msg("chat messages deleted")
	return count, nil
}

func (s *service) requireChat(ctx context.Context, chatID uint) error {
	ok, err := s.chats.Exists(ctx, chatID)
	if err != nil {
		return err
	}
	if !ok {
		return platformerrors.NotFound(ctx, platformerrors.LayerDomain, msgChatNotFound, "message-chat-not-found")
	}
	return nil
}

// requireUser fails with errType when the user is missing: a user named in
// the path is a missing resource, one named in the body is invalid input.
func (s *service) requireUser(ctx context.Context, userID uint, errType platformerrors.ErrorType) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, errType, msgUserNotFound, nil, "message-user-not-found")
	}
	return nil
}
