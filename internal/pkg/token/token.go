// Package token issues and verifies the HS256 bearer tokens used for
// stateless sessions. Tokens carry the subject user id and an absolute
// expiry; nothing is stored server-side.
package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adminboard/user-service/internal/core/domain"
)

// DefaultTTL applies when Config.TTL is unset.
const DefaultTTL = 30 * time.Minute

// Config carries the signing material. Secret and TTL are fixed at startup
// and passed explicitly; the manager never reads ambient configuration.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Manager signs and verifies bearer tokens with a shared HMAC secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(cfg Config) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(cfg.Secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue builds the claim set {sub: subjectID, exp: now + ttl}, signs it with
// HS256 and returns the compact token string.
func (m *Manager) Issue(subjectID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subjectID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature and expiry and returns the subject user id. Parse
// failures (wrong algorithm, bad signature, malformed payload, expired,
// non-numeric subject) collapse into domain.ErrInvalidToken; a well-formed
// token with no subject claim returns domain.ErrMissingSubject. Expiry is
// exact UTC wall-clock with no skew window.
func (m *Manager) Verify(raw string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, domain.ErrInvalidToken
	}

	if claims.Subject == "" {
		return 0, domain.ErrMissingSubject
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidToken
	}
	return id, nil
}
