package ports

import (
	"context"

	"github.com/adminboard/user-service/internal/core/domain"
)

// LoginResult is the successful outcome of a login: a signed bearer token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService implements the login flow and per-request identity resolution.
//
// Login's identifier is matched against the stored email, not the username.
// Authenticate verifies a raw bearer token and resolves its subject to the
// stored user, which is what catches tokens for since-deleted accounts.
type AuthService interface {
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	Authenticate(ctx context.Context, rawToken string) (*domain.User, error)
}

// LoginThrottle limits consecutive failed login attempts per identifier.
// A nil throttle disables limiting.
type LoginThrottle interface {
	Blocked(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
}
