package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate(7, "pat@example.com", "user", testSecret, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := Validate(token, testSecret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "pat@example.com" || claims.Role != "user" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := Generate(7, "pat@example.com", "user", testSecret, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := Validate(token, "some-other-secret"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateExpired(t *testing.T) {
	claims := Claims{
		UserID: 7,
		Email:  "pat@example.com",
		Role:   "user",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Validate(token, testSecret); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := Validate(token, testSecret); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: err = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestValidateRejectsEmptyPayload(t *testing.T) {
	// Structurally valid token with a zero user id.
	claims := Claims{
		Email: "pat@example.com",
		Role:  "user",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Validate(token, testSecret); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
