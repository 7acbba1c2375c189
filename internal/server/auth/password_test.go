package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Tests use the minimum bcrypt cost to keep the suite fast; the production
// cost comes from config.
func newFastHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := newFastHasher()

	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "password123"},
		{name: "complex password", password: "P@ssw0rd!#$%^&*()"},
		{name: "long password", password: "this-is-a-very-long-password-that-should-still-work"},
		{name: "unicode password", password: "пароль123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := hasher.Hash(tt.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if digest == "" || digest == tt.password {
				t.Fatalf("Hash() returned unusable digest %q", digest)
			}
			if !hasher.Verify(tt.password, digest) {
				t.Error("Verify() returned false for correct password")
			}
			if hasher.Verify(tt.password+"x", digest) {
				t.Error("Verify() returned true for wrong password")
			}
		})
	}
}

func TestPasswordHasher_UniqueHashes(t *testing.T) {
	hasher := newFastHasher()
	password := "samepassword"

	hash1, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	hash2, err := hasher.Hash(password)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	// bcrypt salts, so the same password never hashes to the same digest
	if hash1 == hash2 {
		t.Error("Hash() produced identical digests for the same password")
	}
	if !hasher.Verify(password, hash1) || !hasher.Verify(password, hash2) {
		t.Error("Verify() failed for a freshly produced digest")
	}
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher(0)
	if h.cost != DefaultBcryptCost {
		t.Fatalf("expected fallback to DefaultBcryptCost, got %d", h.cost)
	}
	h = NewPasswordHasher(100)
	if h.cost != DefaultBcryptCost {
		t.Fatalf("expected fallback to DefaultBcryptCost, got %d", h.cost)
	}
}
