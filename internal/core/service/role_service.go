package service

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/core/ports"
)

// RoleService serves the read-only role catalog. Roles are written only by
// the startup seeder, never through this service.
type RoleService struct {
	roles ports.RoleRepository
}

func NewRoleService(roles ports.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.ListAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) GetByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	return s.roles.FindByName(ctx, name)
}
