package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must differ from plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("expected bcrypt hash, got %s", hash)
	}

	if !ComparePassword(hash, "s3cret") {
		t.Error("expected password to match its hash")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("expected wrong password not to match")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same", bcrypt.MinCost)
	h2, _ := HashPassword("same", bcrypt.MinCost)

	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects passwords longer than 72 bytes
	_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
	if err == nil {
		t.Fatal("expected error for overlong password, got nil")
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	if ComparePassword("not-a-hash", "anything") {
		t.Error("expected malformed hash not to match")
	}
}
