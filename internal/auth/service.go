package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lsaportal.org/internal/obs"
	"lsaportal.org/internal/spa"
)

// PolicyResolver derives the current access policy for a spa. Satisfied by
// *spa.Resolver.
type PolicyResolver interface {
	Resolve(ctx context.Context, spaID int64) (spa.Policy, error)
}

// Service orchestrates login: credential verification, the spa status gate
// for spa-scoped roles, the best-effort last-login update, and token
// issuance.
type Service struct {
	users  UserStore
	spas   PolicyResolver
	tokens *TokenService
}

func NewService(users UserStore, spas PolicyResolver, tokens *TokenService) *Service {
	return &Service{users: users, spas: spas, tokens: tokens}
}

// Tokens exposes the token service for verification middleware.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// LoginResult is a successful authorization. Policy is nil for global roles,
// which never consult spa status.
type LoginResult struct {
	User      *AdminUser
	Policy    *spa.Policy
	Token     string
	ExpiresAt time.Time
}

// VerifyCredentials validates a username/secret pair. Missing account and
// wrong secret both come back as ErrInvalidCredentials; the returned
// identity has its secret stripped. Read-only.
func (s *Service) VerifyCredentials(ctx context.Context, username, secret string) (*AdminUser, error) {
	if strings.TrimSpace(username) == "" || secret == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: find user: %w", err)
	}
	if !user.Secret.Matches(secret) {
		return nil, ErrInvalidCredentials
	}
	return user.Sanitized(), nil
}

// Login runs the full gate. Spa-scoped identities additionally pass through
// the status gate: the spa's policy is resolved fresh and a non-login-capable
// policy terminates the flow with RestrictedError. A fresh token is issued on
// every successful call.
func (s *Service) Login(ctx context.Context, username, secret string) (*LoginResult, error) {
	user, err := s.VerifyCredentials(ctx, username, secret)
	if err != nil {
		return nil, err
	}

	var policy *spa.Policy
	if user.Role.SpaScoped() && user.SpaID != 0 {
		resolved, err := s.spas.Resolve(ctx, user.SpaID)
		if err != nil {
			// Lookup failure or unknown status: fail the whole login,
			// never partially authorize.
			return nil, fmt.Errorf("auth: spa gate: %w", err)
		}
		if !resolved.CanLogin {
			return nil, &RestrictedError{Policy: resolved}
		}
		policy = &resolved
	}

	// Best effort: a failed timestamp write must not invalidate an
	// otherwise successful login.
	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		obs.Error("last login update failed", err, map[string]any{"user_id": user.ID})
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth: issue token: %w", err)
	}
	return &LoginResult{User: user, Policy: policy, Token: token, ExpiresAt: expiresAt}, nil
}

// IdentityFromToken verifies the token and re-fetches the identity from the
// store so a deactivated account loses access immediately. The token itself
// never carries an authorization decision.
func (s *Service) IdentityFromToken(ctx context.Context, raw string) (*AdminUser, *Claims, error) {
	claims, err := s.tokens.Verify(raw)
	if err != nil {
		return nil, nil, err
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, nil, ErrTokenInvalid
	}
	user, err := s.users.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrTokenInvalid
		}
		return nil, nil, fmt.Errorf("auth: find user: %w", err)
	}
	return user.Sanitized(), claims, nil
}
