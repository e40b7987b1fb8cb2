// internal/handlers/auth_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
	"github.com/UmairIqbal92/car-dealer-fork/internal/middleware"
	"github.com/UmairIqbal92/car-dealer-fork/internal/models"
	"github.com/UmairIqbal92/car-dealer-fork/internal/services"
)

type AuthFlowTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	cfg    *config.Config
}

func (suite *AuthFlowTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:authflowtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	suite.Require().NoError(err)
	suite.Require().NoError(db.AutoMigrate(&models.AdminUser{}, &models.AdminSession{}))
	db.Exec("DELETE FROM admin_users")
	db.Exec("DELETE FROM admin_sessions")
	suite.db = db

	suite.cfg = &config.Config{
		Environment: "development",
		Admin:       config.AdminConfig{Username: "admin"},
		Session:     config.SessionConfig{CookieName: "admin_session", TTLHours: 24},
	}

	authService := services.NewAuthService(db, suite.cfg)
	suite.Require().NoError(authService.Bootstrap("admin", "secret123"))

	authHandler := NewAuthHandler(authService, suite.cfg)
	adminOnly := middleware.AdminRequired(authService, suite.cfg.Session.CookieName)

	suite.router = gin.New()
	suite.router.POST("/api/admin/login", authHandler.Login)
	suite.router.POST("/api/admin/logout", authHandler.Logout)
	suite.router.GET("/api/admin/check", authHandler.Check)
	suite.router.POST("/api/admin/change-password", adminOnly, authHandler.ChangePassword)
}

func (suite *AuthFlowTestSuite) request(method, path string, body map[string]interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthFlowTestSuite) login(username, password string) *httptest.ResponseRecorder {
	return suite.request("POST", "/api/admin/login", map[string]interface{}{
		"username": username,
		"password": password,
	}, nil)
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	return nil
}

func (suite *AuthFlowTestSuite) TestLoginSetsSessionCookie() {
	w := suite.login("admin", "secret123")
	suite.Equal(http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	suite.Require().NotNil(cookie)
	suite.Len(cookie.Value, 64)
	suite.True(cookie.HttpOnly)
	suite.False(cookie.Secure) // not production
	suite.Equal(http.SameSiteLaxMode, cookie.SameSite)
	suite.Equal(24*3600, cookie.MaxAge)
}

func (suite *AuthFlowTestSuite) TestLoginRejectsBadCredentials() {
	w := suite.login("admin", "wrong")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Nil(sessionCookie(w))
}

func (suite *AuthFlowTestSuite) TestCheckRequiresValidSession() {
	w := suite.request("GET", "/api/admin/check", nil, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request("GET", "/api/admin/check", nil, &http.Cookie{Name: "admin_session", Value: "forged"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	cookie := sessionCookie(suite.login("admin", "secret123"))
	suite.Require().NotNil(cookie)

	w = suite.request("GET", "/api/admin/check", nil, cookie)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AuthFlowTestSuite) TestLogoutRevokesSession() {
	cookie := sessionCookie(suite.login("admin", "secret123"))
	suite.Require().NotNil(cookie)

	w := suite.request("POST", "/api/admin/logout", nil, cookie)
	suite.Equal(http.StatusOK, w.Code)

	cleared := sessionCookie(w)
	suite.Require().NotNil(cleared)
	suite.Empty(cleared.Value)

	// The old token must be dead server-side even if the client kept it
	w = suite.request("GET", "/api/admin/check", nil, cookie)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthFlowTestSuite) TestChangePasswordGuarded() {
	w := suite.request("POST", "/api/admin/change-password", map[string]interface{}{
		"currentPassword": "secret123",
		"newPassword":     "replacement",
	}, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthFlowTestSuite) TestChangePasswordFlow() {
	cookie := sessionCookie(suite.login("admin", "secret123"))
	suite.Require().NotNil(cookie)

	w := suite.request("POST", "/api/admin/change-password", map[string]interface{}{
		"currentPassword": "secret123",
		"newPassword":     "tiny",
	}, cookie)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request("POST", "/api/admin/change-password", map[string]interface{}{
		"currentPassword": "wrong",
		"newPassword":     "replacement",
	}, cookie)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.request("POST", "/api/admin/change-password", map[string]interface{}{
		"currentPassword": "secret123",
		"newPassword":     "replacement",
	}, cookie)
	suite.Equal(http.StatusOK, w.Code)

	suite.Equal(http.StatusUnauthorized, suite.login("admin", "secret123").Code)
	suite.Equal(http.StatusOK, suite.login("admin", "replacement").Code)
}

func TestAuthFlowSuite(t *testing.T) {
	suite.Run(t, new(AuthFlowTestSuite))
}
