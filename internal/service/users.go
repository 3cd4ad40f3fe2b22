package service

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/go-blog/internal/lib/job"
	"github.com/deppfellow/go-blog/internal/model"
)

// UserStore persists users. Missing users are reported as *errs.HTTPError
// with code USER_NOT_FOUND.
type UserStore interface {
	Create(ctx context.Context, u model.NewUser) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, p model.Pagination) ([]model.User, error)
	Patch(ctx context.Context, id int64, patch model.UserPatch) (*model.User, error)
}

// UserCache caches single users by id. Get returns (nil, nil) on a miss.
type UserCache interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	Set(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id int64) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type UserService struct {
	store    UserStore
	cache    UserCache
	jobs     TaskEnqueuer
	hashCost int
}

// NewUserService builds the service. cache and jobs may be nil.
func NewUserService(store UserStore, cache UserCache, jobs TaskEnqueuer) *UserService {
	return &UserService{
		store:    store,
		cache:    cache,
		jobs:     jobs,
		hashCost: bcrypt.DefaultCost,
	}
}

// GetUser reads through the cache. Cache failures are logged and fall back
// to the store.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			logger.Warn().Err(err).Int64("user_id", id).Msg("user cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			logger.Warn().Err(err).Int64("user_id", id).Msg("user cache write failed")
		}
	}

	return user, nil
}

// ListUsers returns one page of users; never nil.
func (s *UserService) ListUsers(ctx context.Context, p model.Pagination) ([]model.User, error) {
	users, err := s.store.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// CreateUser hashes the password, persists the user and enqueues the
// welcome email. A failed enqueue does not fail the request.
func (s *UserService) CreateUser(ctx context.Context, p model.CreateUserParams) (*model.User, error) {
	hash, err := s.hashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Create(ctx, model.NewUser{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "user_created").
		Int64("user_id", user.ID).
		Msg("user created")

	s.enqueueWelcomeEmail(ctx, user)

	return user, nil
}

// PatchUser applies the non-nil fields and evicts the cached copy.
func (s *UserService) PatchUser(ctx context.Context, id int64, p model.PatchUserParams) (*model.User, error) {
	patch := model.UserPatch{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}

	if p.Password != nil {
		hash, err := s.hashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	user, err := s.store.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int64("user_id", id).Msg("user cache eviction failed")
		}
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "user_patched").
		Int64("user_id", user.ID).
		Msg("user patched")

	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

func (s *UserService) enqueueWelcomeEmail(ctx context.Context, user *model.User) {
	if s.jobs == nil {
		return
	}

	logger := zerolog.Ctx(ctx)

	task, err := job.NewWelcomeEmailTask(user.Email, user.FirstName)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to build welcome email task")
		return
	}

	if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
		logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
	}
}
