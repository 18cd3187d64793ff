package user

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"jan-server/services/chat-api/internal/domain/model"
	"jan-server/services/chat-api/internal/utils/platformerrors"
)

// CreateParams describes a new user. A nil Date defaults to the current time.
type CreateParams struct {
	Name  string
	Email string
	Date  *time.Time
}

// Service describes the business logic surface for user operations.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id uint, patch Patch) (*model.User, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
	now  func() time.Time
}

// NewService wires the user service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "user-service").Logger(),
		now:  time.Now,
	}
}

func (s *service) Create(ctx context.Context, params CreateParams) (*model.User, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	if name == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, "name is required", "user-create-name-required")
	}
	if email == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, "email is required", "user-create-email-required")
	}

	date := s.now().UTC()
	if params.Date != nil {
		date = params.Date.UTC()
	}

	u := &model.User{Name: name, Email: email, Date: date}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Debug().Uint("user_id", u.ID).Msg("user created")
	return u, nil
}

func (s *service) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id, FindOptions{
		IncludeChats:    true,
		IncludeMessages: true,
		IncludeReplies:  true,
	})
}

func (s *service) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.FindAll(ctx, FindOptions{
		IncludeChats:    true,
		IncludeMessages: true,
	})
}

func (s *service) Update(ctx context.Context, id uint, patch Patch) (*model.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, "name cannot be empty", "user-update-name-empty")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, platformerrors.Validation(ctx, platformerrors.LayerDomain, "email cannot be empty", "user-update-email-empty")
	}
	if patch.Date != nil {
		utc := patch.Date.UTC()
		patch.Date = &utc
	}

	u, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("user_id", id).Msg("user updated")
	return u, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Debug().Uint("user_id", id).Msg("user deleted")
	return u, nil
}
