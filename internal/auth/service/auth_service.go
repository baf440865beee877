package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sourcecodehub/hub-backend/internal/auth/domain"
	"github.com/sourcecodehub/hub-backend/internal/auth/repository"
)

type AuthService struct {
	admins   *repository.AdminRepository
	sessions *repository.SessionRepository
	log      *zap.Logger
}

func NewAuthService(admins *repository.AdminRepository, sessions *repository.SessionRepository, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		admins:   admins,
		sessions: sessions,
		log:      log,
	}
}

// Authenticate checks a username/password pair without opening a session.
func (s *AuthService) Authenticate(username, password string) (domain.AdminProfile, error) {
	admin, ok := s.admins.FindByCredentials(username, password)
	if !ok {
		return domain.AdminProfile{}, domain.ErrInvalidCredentials
	}
	return admin, nil
}

// Login authenticates and opens a session, returning its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, domain.AdminProfile, error) {
	admin, err := s.Authenticate(username, password)
	if err != nil {
		s.log.Info("rejected admin login", zap.String("username", username))
		return "", domain.AdminProfile{}, err
	}

	token, err := s.sessions.Create(ctx, admin.ID)
	if err != nil {
		return "", domain.AdminProfile{}, err
	}

	s.log.Info("admin logged in", zap.String("admin_id", admin.ID))
	return token, admin, nil
}

// Logout ends the session. It is idempotent.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Current resolves a session token to the admin it belongs to.
func (s *AuthService) Current(ctx context.Context, token string) (domain.AdminProfile, error) {
	adminID, err := s.sessions.Resolve(ctx, token)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.AdminProfile{}, domain.ErrUnauthenticated
	}
	if err != nil {
		return domain.AdminProfile{}, err
	}

	admin, err := s.admins.GetByID(adminID)
	if errors.Is(err, domain.ErrAdminNotFound) {
		// the admin list was reseeded under a live session
		return domain.AdminProfile{}, domain.ErrUnauthenticated
	}
	return admin, err
}

// Profiles lists every admin's public profile.
func (s *AuthService) Profiles() []domain.PublicProfile {
	admins := s.admins.List()
	out := make([]domain.PublicProfile, 0, len(admins))
	for _, a := range admins {
		out = append(out, a.Public())
	}
	return out
}

func (s *AuthService) GetProfile(id string) (domain.AdminProfile, error) {
	return s.admins.GetByID(id)
}

// UpdateProfile overwrites the editable bio fields of an admin. Hashtags
// arrive as the raw text of the form and are tokenized here.
func (s *AuthService) UpdateProfile(ctx context.Context, adminID string, upd domain.ProfileUpdate) (domain.AdminProfile, error) {
	admin, err := s.admins.Update(ctx, adminID, func(a *domain.AdminProfile) error {
		a.Name = upd.Name
		a.Quote = upd.Quote
		a.Hashtags = domain.ParseHashtags(upd.Hashtags)
		a.PhotoURL = upd.PhotoURL
		return nil
	})
	if err != nil {
		return domain.AdminProfile{}, fmt.Errorf("update profile: %w", err)
	}
	return admin, nil
}

// ChangePassword requires oldPassword to match exactly. The new password is
// stored as given, including an empty one.
func (s *AuthService) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	_, err := s.admins.Update(ctx, adminID, func(a *domain.AdminProfile) error {
		if a.Password != oldPassword {
			return domain.ErrPasswordMismatch
		}
		a.Password = newPassword
		return nil
	})
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.log.Info("admin password changed", zap.String("admin_id", adminID))
	return nil
}
