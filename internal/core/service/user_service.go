package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminboard/user-service/internal/api/metrics"
	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/core/ports"
	"github.com/adminboard/user-service/internal/pkg/password"
)

// UserService orchestrates user CRUD: access control first, referential
// integrity next, then persistence. The authenticated caller is an explicit
// parameter on every mutating operation.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	codec  password.Codec
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, codec password.Codec, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, codec: codec, logger: logger}
}

// validateRole checks that the referenced role exists in the store.
func (s *UserService) validateRole(ctx context.Context, roleID int64) error {
	_, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			s.logger.Warn().Int64("role_id", roleID).Msg("referenced role does not exist")
			return domain.ErrInvalidRole
		}
		return err
	}
	return nil
}

// Create makes a new user. Only admins may create accounts. A missing role
// defaults to guest; the default is validated and persisted like an explicit
// choice. Username/email uniqueness is enforced by the store and surfaces as
// domain.ErrUserExists.
func (s *UserService) Create(ctx context.Context, caller *domain.User, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.CanCreateUser(caller) {
		s.logger.Warn().Str("caller", callerEmail(caller)).Msg("create user denied: admin role required")
		return nil, domain.ErrForbidden
	}

	roleID := domain.RoleIDGuest
	if input.RoleID != nil {
		roleID = *input.RoleID
	}
	if err := s.validateRole(ctx, roleID); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		IsActive:     active,
		RoleID:       &roleID,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user created")
	metrics.UsersCreatedTotal.WithLabelValues(string(created.RoleName())).Inc()
	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// Update applies a partial update. Admins may update anyone, everyone else
// only themselves. Nil fields keep their prior value; in particular a nil
// RoleID preserves the existing role rather than defaulting to guest. A
// supplied password is re-hashed before it touches the store.
func (s *UserService) Update(ctx context.Context, caller *domain.User, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanModifyUser(caller, id) {
		s.logger.Warn().Str("caller", callerEmail(caller)).Int64("target_id", id).Msg("update denied")
		return nil, domain.ErrForbidden
	}

	if input.Username != nil {
		current.Username = *input.Username
	}
	if input.Email != nil {
		current.Email = *input.Email
	}
	if input.FullName != nil {
		current.FullName = *input.FullName
	}
	if input.IsActive != nil {
		current.IsActive = *input.IsActive
	}
	if input.RoleID != nil {
		if err := s.validateRole(ctx, *input.RoleID); err != nil {
			return nil, err
		}
		current.RoleID = input.RoleID
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := s.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, current)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user by id. Same ownership rule as Update. Deleting an
// absent id returns ErrUserNotFound, whether it never existed or was already
// deleted.
func (s *UserService) Delete(ctx context.Context, caller *domain.User, id int64) (bool, error) {
	if !domain.CanModifyUser(caller, id) {
		s.logger.Warn().Str("caller", callerEmail(caller)).Int64("target_id", id).Msg("delete denied")
		return false, domain.ErrForbidden
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, domain.ErrUserNotFound
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	metrics.UsersDeletedTotal.Inc()
	return true, nil
}

func (s *UserService) hashPassword(plaintext string) (string, error) {
	start := time.Now()
	hash, err := s.codec.Hash(plaintext)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	return hash, err
}

func callerEmail(caller *domain.User) string {
	if caller == nil {
		return "anonymous"
	}
	return caller.Email
}
