package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminboard/user-service/internal/core/domain"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager(Config{Secret: "secret", TTL: time.Hour})

	raw, err := m.Issue(42)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected non-empty token")
	}

	sub, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if sub != 42 {
		t.Fatalf("expected subject 42, got %d", sub)
	}
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager(Config{Secret: "secret", TTL: -time.Minute})

	raw, err := m.Issue(7)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := m.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager(Config{Secret: "secret-a", TTL: time.Hour})
	verifier := NewManager(Config{Secret: "secret-b", TTL: time.Hour})

	raw, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyMalformed(t *testing.T) {
	m := NewManager(Config{Secret: "secret", TTL: time.Hour})
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", raw, err)
		}
	}
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	m := NewManager(Config{Secret: "secret", TTL: time.Hour})

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Verify(raw); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	m := NewManager(Config{Secret: "secret", TTL: time.Hour})

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := noSub.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Verify(raw); !errors.Is(err, domain.ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}
}

func TestDefaultTTL(t *testing.T) {
	m := NewManager(Config{Secret: "secret"})
	if m.TTL() != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, m.TTL())
	}
}
