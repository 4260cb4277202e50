package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SecretKind tags how an account's secret is stored.
type SecretKind int

const (
	// SecretBcrypt is the expected format for provisioned accounts.
	SecretBcrypt SecretKind = iota
	// SecretLegacyPlaintext covers rows that predate hashing. A
	// migration-compatibility path, not a security practice; new secrets
	// are always bcrypt.
	SecretLegacyPlaintext
)

// StoredSecret is the tagged variant of an account secret, resolved once at
// fetch time so the comparison strategy never depends on string sniffing at
// the call site.
type StoredSecret struct {
	Kind  SecretKind
	Value string
}

// ClassifySecret inspects the stored value's format.
func ClassifySecret(raw string) StoredSecret {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(raw, prefix) {
			return StoredSecret{Kind: SecretBcrypt, Value: raw}
		}
	}
	return StoredSecret{Kind: SecretLegacyPlaintext, Value: raw}
}

// Matches reports whether the candidate secret matches. Comparison errors
// (malformed hash, cost mismatch) count as a mismatch, never a system error.
func (s StoredSecret) Matches(candidate string) bool {
	if s.Value == "" || candidate == "" {
		return false
	}
	switch s.Kind {
	case SecretBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(s.Value), []byte(candidate)) == nil
	case SecretLegacyPlaintext:
		if len(s.Value) != len(candidate) {
			return false
		}
		return subtle.ConstantTimeCompare([]byte(s.Value), []byte(candidate)) == 1
	}
	return false
}

// HashSecret hashes a plaintext secret with bcrypt. Used by provisioning
// seeds and tests.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", errors.New("auth: secret is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
