package domain

import "errors"

// RoleName identifies one of the fixed application roles.
type RoleName string

const (
	RoleAdmin     RoleName = "admin"
	RoleModerator RoleName = "moderator"
	RoleSupport   RoleName = "support"
	RoleUser      RoleName = "user"
	RoleGuest     RoleName = "guest"
)

// Role ids are stable and match seed order. The set is fixed at build time;
// roles are never created or mutated through the API.
const (
	RoleIDAdmin     int64 = 1
	RoleIDModerator int64 = 2
	RoleIDSupport   int64 = 3
	RoleIDUser      int64 = 4
	RoleIDGuest     int64 = 5
)

var ErrRoleNotFound = errors.New("role not found")
var ErrInvalidRole = errors.New("referenced role does not exist")

// Role is a named permission tier a user can be assigned to.
type Role struct {
	ID   int64    `json:"id"`
	Name RoleName `json:"name"`
}

// AllRoles returns the closed role set in seed order.
func AllRoles() []Role {
	return []Role{
		{ID: RoleIDAdmin, Name: RoleAdmin},
		{ID: RoleIDModerator, Name: RoleModerator},
		{ID: RoleIDSupport, Name: RoleSupport},
		{ID: RoleIDUser, Name: RoleUser},
		{ID: RoleIDGuest, Name: RoleGuest},
	}
}

// RoleNameForID maps a role id to its name. The bool result is false for ids
// outside the closed set.
func RoleNameForID(id int64) (RoleName, bool) {
	switch id {
	case RoleIDAdmin:
		return RoleAdmin, true
	case RoleIDModerator:
		return RoleModerator, true
	case RoleIDSupport:
		return RoleSupport, true
	case RoleIDUser:
		return RoleUser, true
	case RoleIDGuest:
		return RoleGuest, true
	}
	return "", false
}
