package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/adminboard/user-service/internal/api/metrics"
	"github.com/adminboard/user-service/internal/core/domain"
	"github.com/adminboard/user-service/internal/core/ports"
	"github.com/adminboard/user-service/internal/pkg/password"
	"github.com/adminboard/user-service/internal/pkg/token"
)

// AuthService implements login and per-request identity resolution.
type AuthService struct {
	users    ports.UserRepository
	tokens   *token.Manager
	codec    password.Codec
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService wires the login flow. throttle may be nil to disable
// failed-attempt limiting.
func NewAuthService(users ports.UserRepository, tokens *token.Manager, codec password.Codec, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, codec: codec, throttle: throttle, logger: logger}
}

// Login authenticates by identifier and password and issues a bearer token.
//
// The identifier is matched against the stored email (kept as the actual
// contract even though callers often pass it in a "username" field). Unknown
// identifier and wrong password are logged with different detail but both
// return ErrInvalidCredentials, so responses do not reveal which accounts
// exist.
func (s *AuthService) Login(ctx context.Context, identifier, plaintext string) (*ports.LoginResult, error) {
	if identifier == "" || plaintext == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, identifier)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle unavailable, continuing without it")
		} else if blocked {
			s.logger.Warn().Str("identifier", identifier).Msg("login blocked by throttle")
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Str("identifier", identifier).Msg("login failed: unknown identifier")
			s.recordFailure(ctx, identifier)
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.codec.Verify(plaintext, user.PasswordHash) {
		s.logger.Warn().Str("identifier", identifier).Int64("user_id", user.ID).Msg("login failed: wrong password")
		s.recordFailure(ctx, identifier)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, identifier); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()

	return &ports.LoginResult{AccessToken: signed, TokenType: "bearer"}, nil
}

// Authenticate verifies a raw bearer token and resolves its subject to the
// stored user. A token for a deleted account still carries a valid signature
// until it expires; the store lookup is what rejects it.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	subject, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Int64("user_id", subject).Msg("token subject no longer resolves")
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, identifier string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, identifier); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}
