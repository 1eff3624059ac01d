package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("token expired or invalid")
var ErrMissingSubject = errors.New("token payload missing subject")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many failed login attempts")
var ErrUnavailable = errors.New("storage unavailable")

// User models an account in the system. PasswordHash never leaves the process.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name,omitempty"`
	IsActive     bool   `json:"is_active"`
	RoleID       *int64 `json:"role_id,omitempty"`
}

// RoleName resolves the user's role through the compile-time id mapping.
// Empty when no role is assigned or the id falls outside the closed set.
func (u *User) RoleName() RoleName {
	if u == nil || u.RoleID == nil {
		return ""
	}
	name, ok := RoleNameForID(*u.RoleID)
	if !ok {
		return ""
	}
	return name
}
