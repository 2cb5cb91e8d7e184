package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"insureportal/internal/adapters/persistence/models"
	"insureportal/internal/adapters/persistence/repositories"
	"insureportal/internal/config"
	"insureportal/internal/core/domain"
	"insureportal/internal/pkg/jwt"
	"insureportal/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrResetTokenInvalid  = errors.New("password reset token is invalid or has expired")
)

// enumeration-safe message returned for every forgot-password request
const passwordResetSentMessage = "If an account with that email exists, a password reset link has been sent."

// passwordResetWindow is how long a reset token stays valid.
const passwordResetWindow = 10 * time.Minute

// AuthService handles registration, login and the password reset flow
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token string               `json:"token"`
	User  *models.UserResponse `json:"user"`
}

// ForgotPasswordResult carries the enumeration-safe message plus the
// raw reset token for out-of-band delivery (never serialized).
type ForgotPasswordResult struct {
	Message string
	// RawToken is empty when the email is unknown.
	RawToken string
}

// Register registers a new user. Email uniqueness is case-insensitive:
// addresses are normalized to lowercase before storage and lookup.
// New accounts always get the "user" role; promotion happens through
// the admin user-update path.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	email := NormalizeEmail(input.Email)

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     email,
		Password:  hashedPassword,
		Role:      string(domain.RoleUser),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ForgotPassword starts the password reset flow. Unknown addresses get
// the same success-shaped result as known ones so the endpoint cannot
// be used to enumerate accounts. Only the sha256 digest of the token is
// stored; the raw token goes back for out-of-band delivery.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResult, error) {
	result := &ForgotPasswordResult{Message: passwordResetSentMessage}

	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ Password reset requested for unknown email")
			return result, nil
		}
		return nil, err
	}

	rawToken, err := password.NewResetToken()
	if err != nil {
		return nil, err
	}

	expires := time.Now().Add(passwordResetWindow)
	user.PasswordResetToken = password.HashToken(rawToken)
	user.PasswordResetExpires = &expires

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	result.RawToken = rawToken
	// No mail transport is wired up, so the token is delivered through
	// the server log the operator watches.
	log.Printf("✅ Password reset token issued for %s: %s", user.Email, rawToken)
	return result, nil
}

// ResetPassword completes the reset flow: the presented token is
// hashed and matched against a non-expired stored digest, then the
// token fields are cleared and the new password saved.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if !password.ValidatePassword(newPassword) {
		return ErrWeakPassword
	}

	user, err := s.userRepo.GetByResetToken(ctx, password.HashToken(rawToken), time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ Password reset completed for %s", user.Email)
	return nil
}

// ValidateToken validates a bearer token
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.Validate(token, s.cfg.JWT.Secret)
}

// generateToken signs a bearer token embedding the user's identity and
// role as of now.
func (s *AuthService) generateToken(user *models.User) (string, error) {
	return jwt.Generate(user.ID, user.Email, user.Role, s.cfg.JWT.Secret, s.cfg.JWT.ExpiryDays)
}

// NormalizeEmail lowercases and trims an email address for storage and
// case-insensitive comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
