package ports

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
)

// RoleService exposes the read-only role catalog.
type RoleService interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}
