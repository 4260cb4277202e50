package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestClassifySecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if got := ClassifySecret(string(hash)); got.Kind != SecretBcrypt {
		t.Fatalf("bcrypt hash classified as %v", got.Kind)
	}
	if got := ClassifySecret("$2y$10$abcdefghijk"); got.Kind != SecretBcrypt {
		t.Fatalf("$2y$ hash classified as %v", got.Kind)
	}
	if got := ClassifySecret("plaintext123"); got.Kind != SecretLegacyPlaintext {
		t.Fatalf("plaintext classified as %v", got.Kind)
	}
}

func TestMatchesBcrypt(t *testing.T) {
	hash, err := HashSecret("correct horse battery")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	secret := ClassifySecret(hash)
	if !secret.Matches("correct horse battery") {
		t.Fatal("expected match")
	}
	if secret.Matches("wrong") {
		t.Fatal("expected mismatch")
	}
}

func TestMatchesLegacyPlaintext(t *testing.T) {
	secret := ClassifySecret("plaintext123")
	if !secret.Matches("plaintext123") {
		t.Fatal("expected match")
	}
	if secret.Matches("plaintext124") {
		t.Fatal("expected mismatch")
	}
	if secret.Matches("") {
		t.Fatal("empty candidate must never match")
	}
}

func TestMatchesMalformedHashIsMismatchNotError(t *testing.T) {
	secret := StoredSecret{Kind: SecretBcrypt, Value: "$2b$not-a-real-hash"}
	if secret.Matches("anything") {
		t.Fatal("malformed hash must fail verification")
	}
}

func TestEmptyStoredSecretNeverMatches(t *testing.T) {
	if (StoredSecret{}).Matches("") {
		t.Fatal("empty stored secret must never match")
	}
}
