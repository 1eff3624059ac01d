package ports

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user. A nil RoleID
// defaults to the guest role.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	FullName string
	IsActive *bool
	RoleID   *int64
}

// UpdateUserInput carries a partial update; nil fields keep their prior
// value. Unlike creation, a nil RoleID preserves the existing role rather
// than defaulting to guest.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	FullName *string
	IsActive *bool
	RoleID   *int64
}

// UserService orchestrates user CRUD. The caller is the authenticated
// principal and is passed explicitly on every mutating operation; access
// decisions happen here, not in the transport layer.
type UserService interface {
	Create(ctx context.Context, caller *domain.User, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, caller *domain.User, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller *domain.User, id int64) (bool, error)
}
