package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenInvalid         = errors.New("token invalid")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrAdminInactive        = errors.New("admin account is inactive")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrResetCodeInvalid     = errors.New("reset code is invalid or expired")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// adminClaims are the JWT claims issued on login.
type adminClaims struct {
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService handles authentication related business logic.
type AuthService struct {
	adminRepo repository.AdminRepository
	mailer    Mailer
	cfg       *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository, mailer Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

// Bootstrap creates the admin record if it does not exist yet. It is
// idempotent and safe to run on every process start; the unique constraint on
// username guards against double creation.
func (s *AuthService) Bootstrap() error {
	_, err := s.adminRepo.FindByUsername(s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	if s.cfg.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required to bootstrap the admin account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	admin := &models.Admin{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
		Email:        s.cfg.AdminEmail,
		IsActive:     true,
	}
	return s.adminRepo.Create(admin)
}

// Login verifies the admin password and issues a signed token. The admin
// username is fixed; callers only supply the password. The error is the same
// whether the account is absent or the password is wrong.
func (s *AuthService) Login(password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(s.cfg.AdminUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a compare so the absent-account path costs the same.
			_ = bcrypt.CompareHashAndPassword(
				[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
				[]byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if !admin.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	admin.LastLogin = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return "", nil, fmt.Errorf("failed to record login: %w", err)
	}

	return token, admin, nil
}

func (s *AuthService) generateToken(admin *models.Admin) (string, error) {
	expiry := time.Now().Add(time.Duration(s.cfg.JWTExpiryHours) * time.Hour)
	claims := &adminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "portfolio-api",
			Subject:   fmt.Sprintf("%d", admin.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies a bearer token and loads the referenced admin.
// Returns ErrTokenExpired, ErrTokenInvalid, or ErrAdminInactive for the
// middleware to translate into coded 401 responses.
func (s *AuthService) ValidateToken(tokenString string) (*models.Admin, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	admin, err := s.adminRepo.FindByID(claims.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if !admin.IsActive {
		return nil, ErrTokenInvalid
	}

	return admin, nil
}

// GetAdmin retrieves an admin by ID.
func (s *AuthService) GetAdmin(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return admin, nil
}

// ChangePassword verifies the current password before accepting a new one.
func (s *AuthService) ChangePassword(adminID uint, currentPassword, newPassword string) error {
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	admin, err := s.adminRepo.FindByID(adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	admin.PasswordHash = string(hash)
	return s.adminRepo.Update(admin)
}

// RequestPasswordReset emails a short-lived one-time code to the admin
// address. The outcome is the same whether or not the email matches an
// account, so the endpoint cannot be used to probe for the admin email.
func (s *AuthService) RequestPasswordReset(email string) error {
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find admin: %w", err)
	}
	if !admin.IsActive {
		return nil
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	reset := &models.PasswordReset{
		Email:     admin.Email,
		CodeHash:  utils.HashResetCode(code),
		ExpiresAt: time.Now().Add(constants.ResetCodeTTLMin * time.Minute),
	}
	if err := s.adminRepo.StoreReset(reset); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	s.mailer.SendResetCode(admin.Email, code)
	return nil
}

// ResetPassword consumes a previously emailed reset code and sets a new
// password. The current password is not required on this recovery path.
func (s *AuthService) ResetPassword(email, code, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(newPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	now := time.Now()
	reset, err := s.adminRepo.FindActiveReset(email, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetCodeInvalid
		}
		return fmt.Errorf("failed to look up reset code: %w", err)
	}

	codeHash := utils.HashResetCode(code)
	if subtle.ConstantTimeCompare([]byte(codeHash), []byte(reset.CodeHash)) != 1 {
		return ErrResetCodeInvalid
	}

	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetCodeInvalid
		}
		return fmt.Errorf("failed to find admin: %w", err)
	}
	if !admin.IsActive {
		return ErrResetCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	admin.PasswordHash = string(hash)
	if err := s.adminRepo.Update(admin); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return s.adminRepo.ConsumeReset(reset, now)
}
