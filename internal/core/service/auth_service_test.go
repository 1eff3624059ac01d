package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/pkg/password"
	"github.com/adminboard/user-service/internal/pkg/token"
)

// fast bcrypt for tests
var testCodec = password.Codec{Cost: 4}

func newTestAuthService(repo *stubUserRepo, throttle *stubThrottle) *AuthService {
	tokens := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	if throttle == nil {
		return NewAuthService(repo, tokens, testCodec, nil, zerolog.Nop())
	}
	return NewAuthService(repo, tokens, testCodec, throttle, zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, username, email, plaintext string, roleID int64) *domain.User {
	t.Helper()
	hash, err := testCodec.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		RoleID:       &roleID,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seeded := seedUser(t, repo, "admin", "admin@example.com", "admin", domain.RoleIDAdmin)
	svc := newTestAuthService(repo, nil)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.AccessToken == "" {
		t.Fatalf("expected non-empty token")
	}
	if result.TokenType != "bearer" {
		t.Fatalf("expected token type bearer, got %q", result.TokenType)
	}

	// The token's subject must round-trip to the seeded user.
	caller, err := svc.Authenticate(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if caller.ID != seeded.ID {
		t.Fatalf("expected subject %d, got %d", seeded.ID, caller.ID)
	}
}

// Login matches the identifier against email, not username. Passing the
// username fails even with the right password; that is the intended contract.
func TestAuthService_Login_MatchesEmailNotUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin", "admin@example.com", "admin", domain.RoleIDAdmin)
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Login(context.Background(), "admin", "admin"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for username identifier, got %v", err)
	}
}

func TestAuthService_Login_UnknownAndWrongPasswordUniform(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "bob", "bob@example.com", "goodpass", domain.RoleIDUser)
	svc := newTestAuthService(repo, nil)

	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "pass")
	_, errWrong := svc.Login(context.Background(), "bob@example.com", "badpass")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@example.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "eve", "eve@example.com", "rightpass", domain.RoleIDUser)
	throttle := newStubThrottle(3)
	svc := newTestAuthService(repo, throttle)

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), "eve@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Fourth attempt is blocked before the password is even checked.
	if _, err := svc.Login(context.Background(), "eve@example.com", "rightpass"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsThrottleOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "dan", "dan@example.com", "rightpass", domain.RoleIDUser)
	throttle := newStubThrottle(3)
	svc := newTestAuthService(repo, throttle)

	_, _ = svc.Login(context.Background(), "dan@example.com", "wrong")
	_, _ = svc.Login(context.Background(), "dan@example.com", "wrong")

	if _, err := svc.Login(context.Background(), "dan@example.com", "rightpass"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.failures["dan@example.com"] != 0 {
		t.Fatalf("expected failure counter cleared after success")
	}
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Authenticate_DeletedSubject(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "gone", "gone@example.com", "pass", domain.RoleIDUser)
	svc := newTestAuthService(repo, nil)

	result, err := svc.Login(context.Background(), "gone@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// The token stays signature-valid after the account is deleted; the
	// store lookup is what rejects it.
	if _, err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), result.AccessToken); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
