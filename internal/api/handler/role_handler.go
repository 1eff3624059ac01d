package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/core/ports"
)

type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List returns the fixed role catalog.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  roleResponse
// @Security     BearerAuth
// @Router       /roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]roleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, toRoleResponse(&roles[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetByID returns a role by numeric id.
//
// @Summary      Get a role by id
// @Tags         roles
// @Produce      json
// @Param        id   path      int  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /roles/{id} [get]
func (h *RoleHandler) GetByID(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	role, err := h.roleService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// GetByName returns a role by name.
//
// @Summary      Get a role by name
// @Tags         roles
// @Produce      json
// @Param        name  path      string  true  "Role name"
// @Success      200   {object}  roleResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /roles/name/{name} [get]
func (h *RoleHandler) GetByName(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	role, err := h.roleService.GetByName(c.Request().Context(), domain.RoleName(c.Param("name")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}
