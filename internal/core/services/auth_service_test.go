package services

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"insureportal/internal/config"
	"insureportal/internal/core/domain"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryDays: 7},
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func registerUser(t *testing.T, svc *AuthService, email string) *AuthResponse {
	t.Helper()
	result, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Pat",
		LastName:  "Holder",
		Email:     email,
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return result
}

func TestRegister(t *testing.T) {
	svc, _ := newAuthFixture()

	result := registerUser(t, svc, "Pat.Holder@Example.COM")

	if result.Token == "" {
		t.Fatal("no token issued on registration")
	}
	if result.User.Email != "pat.holder@example.com" {
		t.Fatalf("email = %q, want lowercased", result.User.Email)
	}
	if result.User.Role != string(domain.RoleUser) {
		t.Fatalf("role = %q, want user regardless of input", result.User.Role)
	}

	claims, err := svc.ValidateToken(result.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Role != string(domain.RoleUser) {
		t.Fatalf("token claims = %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	registerUser(t, svc, "pat@example.com")

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "PAT@example.com",
		Password:  "secret1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &RegisterInput{
		FirstName: "Pat",
		LastName:  "Holder",
		Email:     "pat@example.com",
		Password:  "short",
	})
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	registerUser(t, svc, "pat@example.com")
	ctx := context.Background()

	if _, err := svc.Login(ctx, &LoginInput{Email: "pat@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Login(ctx, &LoginInput{Email: "pat@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestForgotPasswordIsEnumerationSafe(t *testing.T) {
	svc, _ := newAuthFixture()
	registerUser(t, svc, "pat@example.com")
	ctx := context.Background()

	known, err := svc.ForgotPassword(ctx, "pat@example.com")
	if err != nil {
		t.Fatalf("forgot known: %v", err)
	}
	unknown, err := svc.ForgotPassword(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("forgot unknown: %v", err)
	}

	if known.Message != unknown.Message {
		t.Fatal("messages differ between known and unknown emails")
	}
	if known.RawToken == "" {
		t.Fatal("no reset token issued for known email")
	}
	if unknown.RawToken != "" {
		t.Fatal("reset token issued for unknown email")
	}
}

func TestForgotPasswordLogsToken(t *testing.T) {
	svc, _ := newAuthFixture()
	registerUser(t, svc, "pat@example.com")

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	forgot, err := svc.ForgotPassword(context.Background(), "pat@example.com")
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}
	// Without a mail transport the log line is the only way the token
	// reaches the user, so the reset flow depends on it.
	if !strings.Contains(buf.String(), forgot.RawToken) {
		t.Fatal("raw reset token not written to the log")
	}
}

func TestResetPasswordFlow(t *testing.T) {
	svc, userRepo := newAuthFixture()
	result := registerUser(t, svc, "pat@example.com")
	ctx := context.Background()

	forgot, err := svc.ForgotPassword(ctx, "pat@example.com")
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}

	if err := svc.ResetPassword(ctx, forgot.RawToken, "newsecret"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// New password works, old one does not.
	if _, err := svc.Login(ctx, &LoginInput{Email: "pat@example.com", Password: "newsecret"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginInput{Email: "pat@example.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password err = %v, want ErrInvalidCredentials", err)
	}

	// Token is single-use.
	if err := svc.ResetPassword(ctx, forgot.RawToken, "another1"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("reuse err = %v, want ErrResetTokenInvalid", err)
	}

	user, _ := userRepo.GetByID(ctx, result.User.ID)
	if user.PasswordResetToken != "" || user.PasswordResetExpires != nil {
		t.Fatal("reset token fields not cleared")
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, userRepo := newAuthFixture()
	result := registerUser(t, svc, "pat@example.com")
	ctx := context.Background()

	forgot, err := svc.ForgotPassword(ctx, "pat@example.com")
	if err != nil {
		t.Fatalf("forgot: %v", err)
	}

	// Backdate the expiry.
	user, _ := userRepo.GetByID(ctx, result.User.ID)
	expired := time.Now().Add(-time.Minute)
	user.PasswordResetExpires = &expired

	if err := svc.ResetPassword(ctx, forgot.RawToken, "newsecret"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("expired token err = %v, want ErrResetTokenInvalid", err)
	}
}

func TestResetPasswordGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture()

	if err := svc.ResetPassword(context.Background(), "not-a-token", "newsecret"); !errors.Is(err, ErrResetTokenInvalid) {
		t.Fatalf("err = %v, want ErrResetTokenInvalid", err)
	}
}
