package utils

import (
	"testing"
	"time"
)

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatal(err)
	}

	token, err := m.NewJWT("42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := m.Parse(token)
	if err != nil {
		t.Fatal(err)
	}
	if sub != "42" {
		t.Errorf("subject = %q, want 42", sub)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer, _ := NewManager("key-one")
	verifier, _ := NewManager("key-two")

	token, err := issuer.NewJWT("42", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("token signed with a different key must not parse")
	}
}

func TestNewRefreshTokenUnique(t *testing.T) {
	m, _ := NewManager("test-signing-key")

	a, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(a))
	}
	if a == b {
		t.Error("two refresh tokens must differ")
	}
}
