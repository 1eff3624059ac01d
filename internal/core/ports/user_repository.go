package ports

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Implementations
// return domain.ErrUserNotFound for lookup misses and domain.ErrUserExists
// when a unique constraint on username or email is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
