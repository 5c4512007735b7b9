package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost embeds in the digest, so it can be raised later without
	// invalidating existing hashes.
	BcryptCost = 12

	MinPasswordLen = 8
	MaxPasswordLen = 72 // bcrypt input limit
)

// HashPassword hashes a plaintext password with bcrypt. The resulting digest
// is self-describing: it carries the cost factor and salt.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword reports whether plaintext matches the stored digest. A
// malformed digest verifies as false rather than returning an error, so a
// corrupted row can never authenticate.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// ValidatePassword enforces the password policy for registration and
// password changes.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must be at most %d characters", MaxPasswordLen)
	}
	return nil
}
