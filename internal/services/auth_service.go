// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/utils"
)

type AuthService struct {
	db     *gorm.DB
	config *config.Config
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)

const minPasswordLength = 6

func NewAuthService(db *gorm.DB, config *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		config: config,
	}
}

// VerifyCredentials compares the supplied password against the stored bcrypt
// hash. Unknown usernames report false rather than an error.
func (s *AuthService) VerifyCredentials(username, password string) (bool, error) {
	var admin models.AdminUser
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("database error: %w", err)
	}

	return admin.CheckPassword(password) == nil, nil
}

// ChangePassword verifies the current password, then rehashes and overwrites
// the stored hash. The new password must be at least 6 characters.
func (s *AuthService) ChangePassword(username, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	ok, err := s.VerifyCredentials(username, currentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	var admin models.AdminUser
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}

	if err := admin.SetPassword(newPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&admin).Update("password_hash", admin.PasswordHash).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Bootstrap inserts the admin row only when the username does not already
// exist, so it is safe to run on every deployment.
func (s *AuthService) Bootstrap(username, password string) error {
	var count int64
	if err := s.db.Model(&models.AdminUser{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin := &models.AdminUser{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

// IssueSession mints an opaque random token and records it server-side with
// an expiry, so a cookie is only honored while its row remains valid.
func (s *AuthService) IssueSession() (*models.AdminSession, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &models.AdminSession{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.TTLHours) * time.Hour),
	}

	if err := s.db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ValidateSession checks the token against the session table. Expired rows
// are deleted on sight.
func (s *AuthService) ValidateSession(token string) error {
	if token == "" {
		return ErrSessionInvalid
	}

	var session models.AdminSession
	if err := s.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionInvalid
		}
		return fmt.Errorf("database error: %w", err)
	}

	if session.Expired() {
		s.db.Delete(&session)
		return ErrSessionInvalid
	}

	return nil
}

func (s *AuthService) RevokeSession(token string) error {
	if token == "" {
		return nil
	}
	return s.db.Where("token = ?", token).Delete(&models.AdminSession{}).Error
}
