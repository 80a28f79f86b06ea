package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/footleague/football-api/internal/api/metrics"
	"github.com/footleague/football-api/internal/core/domain"
	"github.com/footleague/football-api/internal/core/ports"
	"github.com/footleague/football-api/internal/core/token"
	"github.com/footleague/football-api/pkg/password"
)

// LoginThrottle guards the password path against brute force. A nil throttle
// disables the check.
type LoginThrottle interface {
	Locked(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements user provisioning, login, and token verification.
type AuthService struct {
	users    ports.UserRepository
	codec    *token.Codec
	throttle LoginThrottle
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, throttle LoginThrottle, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, throttle: throttle, log: log}
}

// CreateUser hashes the password and stores a new identity. The plaintext
// never leaves this function.
func (s *AuthService) CreateUser(ctx context.Context, username, plain string, role domain.Role) (*domain.User, error) {
	if username == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, err
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("username", username).Str("role", string(role)).Msg("user created")
	return created, nil
}

// Login verifies a username/password pair and returns a signed session token.
// An unknown username and a wrong password produce the identical error, so
// the login endpoint cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, plain string) (string, error) {
	if username == "" || plain == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.Locked(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing without it")
		} else if locked {
			metrics.LoginsTotal.WithLabelValues("locked").Inc()
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		user = nil
	case err != nil:
		return "", err
	}

	if user == nil || !password.Verify(plain, user.PasswordHash) {
		if s.throttle != nil {
			if err := s.throttle.RecordFailure(ctx, username); err != nil {
				s.log.Warn().Err(err).Msg("failed to record login failure")
			}
		}
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.Username, user.Role)
	if err != nil {
		return "", err
	}
	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("username", user.Username).Msg("login succeeded")
	return signed, nil
}

// AuthenticateToken verifies a bearer token and resolves it to a live
// identity. The role comes from the user store, not from the token: a role
// downgrade takes effect on the next request instead of waiting out the
// token TTL, and a token for a since-deleted user stops working immediately.
func (s *AuthService) AuthenticateToken(ctx context.Context, raw string) (*domain.User, error) {
	claims, err := s.codec.Decode(raw)
	if err != nil {
		metrics.TokenRejectionsTotal.Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		metrics.TokenRejectionsTotal.Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
