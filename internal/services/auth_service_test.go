// internal/services/auth_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.AdminUser{}, &models.AdminSession{}))

	// Start from a clean slate; the shared cache keeps the schema alive
	// across connections within the test binary.
	db.Exec("DELETE FROM admin_users")
	db.Exec("DELETE FROM admin_sessions")

	suite.db = db
	suite.service = NewAuthService(db, &config.Config{
		Session: config.SessionConfig{CookieName: "admin_session", TTLHours: 24},
	})
}

func (suite *AuthServiceTestSuite) TestBootstrapAndVerify() {
	suite.Require().NoError(suite.service.Bootstrap("admin", "secret123"))

	ok, err := suite.service.VerifyCredentials("admin", "secret123")
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.service.VerifyCredentials("admin", "wrong")
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.service.VerifyCredentials("nobody", "secret123")
	suite.NoError(err)
	suite.False(ok)
}

func (suite *AuthServiceTestSuite) TestBootstrapIsIdempotent() {
	suite.Require().NoError(suite.service.Bootstrap("admin", "first-password"))
	suite.Require().NoError(suite.service.Bootstrap("admin", "second-password"))

	// The second bootstrap must not overwrite the original credentials
	ok, err := suite.service.VerifyCredentials("admin", "first-password")
	suite.NoError(err)
	suite.True(ok)

	var count int64
	suite.db.Model(&models.AdminUser{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	suite.Require().NoError(suite.service.Bootstrap("admin", "original1"))

	err := suite.service.ChangePassword("admin", "original1", "short")
	suite.ErrorIs(err, ErrPasswordTooShort)

	err = suite.service.ChangePassword("admin", "wrong-current", "replacement")
	suite.ErrorIs(err, ErrInvalidCredentials)

	suite.Require().NoError(suite.service.ChangePassword("admin", "original1", "replacement"))

	ok, err := suite.service.VerifyCredentials("admin", "replacement")
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.service.VerifyCredentials("admin", "original1")
	suite.NoError(err)
	suite.False(ok)
}

func (suite *AuthServiceTestSuite) TestSessionLifecycle() {
	session, err := suite.service.IssueSession()
	suite.Require().NoError(err)
	suite.Len(session.Token, 64) // 32 random bytes, hex encoded

	suite.NoError(suite.service.ValidateSession(session.Token))

	suite.NoError(suite.service.RevokeSession(session.Token))
	suite.ErrorIs(suite.service.ValidateSession(session.Token), ErrSessionInvalid)
}

func (suite *AuthServiceTestSuite) TestSessionRejectsUnknownToken() {
	suite.ErrorIs(suite.service.ValidateSession(""), ErrSessionInvalid)
	suite.ErrorIs(suite.service.ValidateSession("not-a-real-token"), ErrSessionInvalid)
}

func (suite *AuthServiceTestSuite) TestExpiredSessionIsDeleted() {
	session, err := suite.service.IssueSession()
	suite.Require().NoError(err)

	suite.db.Model(session).Update("expires_at", time.Now().Add(-time.Hour))

	suite.ErrorIs(suite.service.ValidateSession(session.Token), ErrSessionInvalid)

	var count int64
	suite.db.Model(&models.AdminSession{}).Where("token = ?", session.Token).Count(&count)
	suite.Equal(int64(0), count)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
