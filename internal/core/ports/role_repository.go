package ports

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
)

// RoleRepository defines the interface for role persistence. Roles are only
// ever written by the startup seeder; the API surface is read-only.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
	ListAll(ctx context.Context) ([]domain.Role, error)
}
