package user

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"statutesync/models"
)

// Login signs in whoever asks. Only the role is validated.
func (s *DefaultSessionService) Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error) {
	if req.Role != "" && !req.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	profile, err := s.Repo.Login(ctx, strings.TrimSpace(req.Email), req.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	token, err := s.Repo.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &AuthResponse{User: *profile, Token: token}, nil
}

func (s *DefaultSessionService) Logout(ctx context.Context) error {
	return s.Repo.Logout(ctx)
}

func (s *DefaultSessionService) Status(ctx context.Context) (*AuthStatus, error) {
	ok, err := s.Repo.IsAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &AuthStatus{}, nil
	}
	profile, err := s.Repo.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	return &AuthStatus{Authenticated: true, User: profile}, nil
}

// ValidateToken returns the session profile when token equals the stored session token and, with a
// Verifier set, is correctly signed for the session email.
func (s *DefaultSessionService) ValidateToken(ctx context.Context, token string) (*models.UserProfile, error) {
	subject := ""
	if s.Verifier != nil {
		sub, err := s.Verifier(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		subject = sub
	}

	stored, err := s.Repo.Token(ctx)
	if err != nil {
		return nil, err
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(token)) != 1 {
		return nil, ErrUnauthorized
	}
	profile, err := s.Repo.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnauthorized
	}
	if s.Verifier != nil && subject != profile.Email {
		return nil, ErrUnauthorized
	}
	return profile, nil
}

func (s *DefaultSessionService) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	profile, err := s.Repo.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUnauthorized
	}
	return profile, nil
}

// UpdateProfile applies the name and, when given, the avatar. Email and role are fixed for the life of the session.
func (s *DefaultSessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if update.Name == nil {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	name := strings.TrimSpace(*update.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidProfile)
	}
	profile.Name = name
	if update.Avatar != nil {
		profile.Avatar = strings.TrimSpace(*update.Avatar)
	}
	if err := s.Repo.SaveUser(ctx, *profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}
