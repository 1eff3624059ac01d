package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adminboard/user-service/internal/core/domain"
)

func TestRoleService_List(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	roles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roles) != 5 {
		t.Fatalf("expected 5 roles, got %d", len(roles))
	}
	if roles[0].ID != domain.RoleIDAdmin || roles[0].Name != domain.RoleAdmin {
		t.Fatalf("unexpected first role: %+v", roles[0])
	}
}

func TestRoleService_GetByID(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	role, err := svc.GetByID(context.Background(), domain.RoleIDSupport)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if role.Name != domain.RoleSupport {
		t.Fatalf("expected support, got %s", role.Name)
	}

	if _, err := svc.GetByID(context.Background(), 42); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestRoleService_GetByName(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	role, err := svc.GetByName(context.Background(), domain.RoleGuest)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if role.ID != domain.RoleIDGuest {
		t.Fatalf("expected id %d, got %d", domain.RoleIDGuest, role.ID)
	}

	if _, err := svc.GetByName(context.Background(), "superuser"); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
