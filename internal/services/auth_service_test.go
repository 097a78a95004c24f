package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

// captureMailer records reset codes instead of sending email.
type captureMailer struct {
	resetTo   string
	resetCode string
}

func (m *captureMailer) SendContactNotification(*models.Contact) {}
func (m *captureMailer) SendAutoReply(*models.Contact)           {}
func (m *captureMailer) SendResetCode(to, code string) {
	m.resetTo = to
	m.resetCode = code
}

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	mailer  *captureMailer
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(&models.Admin{}, &models.PasswordReset{})
	suite.Require().NoError(err)

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiryHours: 1,
		AdminUsername:  "admin",
		AdminPassword:  "correct-horse",
		AdminEmail:     "admin@example.com",
	}

	suite.mailer = &captureMailer{}
	suite.service = NewAuthService(repository.NewAdminRepository(suite.db), suite.mailer, cfg)
}

func (suite *AuthServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// TestBootstrapIsIdempotent runs bootstrap twice; one admin row exists after.
func (suite *AuthServiceTestSuite) TestBootstrapIsIdempotent() {
	suite.Require().NoError(suite.service.Bootstrap())
	suite.Require().NoError(suite.service.Bootstrap())

	var count int64
	suite.db.Model(&models.Admin{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	suite.Require().NoError(suite.service.Bootstrap())

	token, admin, err := suite.service.Login("correct-horse")
	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), "admin", admin.Username)
	assert.NotNil(suite.T(), admin.LastLogin)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.Require().NoError(suite.service.Bootstrap())

	_, _, err := suite.service.Login("battery-staple")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

// TestLoginWithoutAccount yields the same error as a wrong password.
func (suite *AuthServiceTestSuite) TestLoginWithoutAccount() {
	_, _, err := suite.service.Login("anything")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestValidateToken() {
	suite.Require().NoError(suite.service.Bootstrap())
	token, _, err := suite.service.Login("correct-horse")
	suite.Require().NoError(err)

	admin, err := suite.service.ValidateToken(token)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "admin", admin.Username)

	_, err = suite.service.ValidateToken("not.a.token")
	assert.ErrorIs(suite.T(), err, ErrTokenInvalid)

	_, err = suite.service.ValidateToken(token + "tampered")
	assert.ErrorIs(suite.T(), err, ErrTokenInvalid)
}

func (suite *AuthServiceTestSuite) TestChangePassword() {
	suite.Require().NoError(suite.service.Bootstrap())
	_, admin, err := suite.service.Login("correct-horse")
	suite.Require().NoError(err)

	err = suite.service.ChangePassword(admin.ID, "wrong", "new-password")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	err = suite.service.ChangePassword(admin.ID, "correct-horse", "short")
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)

	err = suite.service.ChangePassword(admin.ID, "correct-horse", "new-password")
	suite.Require().NoError(err)

	_, _, err = suite.service.Login("correct-horse")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
	_, _, err = suite.service.Login("new-password")
	assert.NoError(suite.T(), err)
}

// TestPasswordResetFlow walks the full recovery path: request a code, consume
// it once, and verify it cannot be replayed.
func (suite *AuthServiceTestSuite) TestPasswordResetFlow() {
	suite.Require().NoError(suite.service.Bootstrap())

	err := suite.service.RequestPasswordReset("admin@example.com")
	suite.Require().NoError(err)
	suite.Require().NotEmpty(suite.mailer.resetCode)
	assert.Equal(suite.T(), "admin@example.com", suite.mailer.resetTo)

	code := suite.mailer.resetCode
	err = suite.service.ResetPassword("admin@example.com", code, "fresh-password", "fresh-password")
	suite.Require().NoError(err)

	_, _, err = suite.service.Login("fresh-password")
	assert.NoError(suite.T(), err)

	// A consumed code is dead.
	err = suite.service.ResetPassword("admin@example.com", code, "other-password", "other-password")
	assert.ErrorIs(suite.T(), err, ErrResetCodeInvalid)
}

// TestPasswordResetUnknownEmail succeeds silently and sends nothing.
func (suite *AuthServiceTestSuite) TestPasswordResetUnknownEmail() {
	suite.Require().NoError(suite.service.Bootstrap())

	err := suite.service.RequestPasswordReset("nobody@example.com")
	suite.Require().NoError(err)
	assert.Empty(suite.T(), suite.mailer.resetCode)
}

func (suite *AuthServiceTestSuite) TestPasswordResetValidation() {
	suite.Require().NoError(suite.service.Bootstrap())
	suite.Require().NoError(suite.service.RequestPasswordReset("admin@example.com"))
	code := suite.mailer.resetCode

	err := suite.service.ResetPassword("admin@example.com", code, "new-password", "different")
	assert.ErrorIs(suite.T(), err, ErrPasswordMismatch)

	err = suite.service.ResetPassword("admin@example.com", code, "tiny", "tiny")
	assert.ErrorIs(suite.T(), err, ErrPasswordTooShort)

	err = suite.service.ResetPassword("admin@example.com", "0000-0000-0000", "new-password", "new-password")
	assert.ErrorIs(suite.T(), err, ErrResetCodeInvalid)
}

// TestPasswordResetExpiredCode backdates the stored code past its TTL.
func (suite *AuthServiceTestSuite) TestPasswordResetExpiredCode() {
	suite.Require().NoError(suite.service.Bootstrap())
	suite.Require().NoError(suite.service.RequestPasswordReset("admin@example.com"))

	suite.db.Model(&models.PasswordReset{}).
		Where("email = ?", "admin@example.com").
		Update("expires_at", time.Now().Add(-time.Minute))

	err := suite.service.ResetPassword("admin@example.com", suite.mailer.resetCode, "new-password", "new-password")
	assert.ErrorIs(suite.T(), err, ErrResetCodeInvalid)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
