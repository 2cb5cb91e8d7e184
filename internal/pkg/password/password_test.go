package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("password stored in the clear")
	}

	if !Verify("secret1", hash) {
		t.Fatal("correct password rejected")
	}
	if Verify("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-b")

	if a == b {
		t.Fatal("different tokens hash equal")
	}
	if a != HashToken("token-a") {
		t.Fatal("token hash not deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(a))
	}
}

func TestNewResetToken(t *testing.T) {
	a, err := NewResetToken()
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	b, err := NewResetToken()
	if err != nil {
		t.Fatalf("new token: %v", err)
	}

	if a == b {
		t.Fatal("tokens not unique")
	}
	if len(a) != resetTokenBytes*2 {
		t.Fatalf("token length = %d", len(a))
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"12345", false},
		{"123456", true},
		{"a much longer passphrase", true},
	}
	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.want {
			t.Fatalf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
