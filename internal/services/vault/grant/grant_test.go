package grant

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	apperrors "github.com/incalabs/coinwrap/internal/platform/errors"
)

func testKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return publicKey, privateKey
}

func testConfigs(t *testing.T, now time.Time) (Config, IssueConfig) {
	t.Helper()
	publicKey, privateKey := testKeys(t)
	verify := Config{
		Issuer:   "coinwrap-admin",
		Audience: "vault.v1",
		Key:      publicKey,
		Now:      func() time.Time { return now },
	}
	issue := IssueConfig{
		Issuer:   "coinwrap-admin",
		Audience: "vault.v1",
		Key:      privateKey,
		TTL:      5 * time.Minute,
	}
	return verify, issue
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, issue := testConfigs(t, now)

	token, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}

	claims, err := Validate(token, "owner-1", verify)
	if err != nil {
		t.Fatalf("validate grant: %v", err)
	}
	if claims.Owner != "owner-1" {
		t.Fatalf("owner = %q, want owner-1", claims.Owner)
	}
	if claims.JWTID == "" {
		t.Fatal("expected jti")
	}
	if !claims.ExpiresAt.Equal(now.Add(5 * time.Minute)) {
		t.Fatalf("exp = %v, want %v", claims.ExpiresAt, now.Add(5*time.Minute))
	}
}

func TestIssueAssignsUniqueGrantIDs(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, issue := testConfigs(t, now)

	first, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue first grant: %v", err)
	}
	second, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue second grant: %v", err)
	}

	firstClaims, err := Validate(first, "owner-1", verify)
	if err != nil {
		t.Fatalf("validate first grant: %v", err)
	}
	secondClaims, err := Validate(second, "owner-1", verify)
	if err != nil {
		t.Fatalf("validate second grant: %v", err)
	}
	if firstClaims.JWTID == "" || firstClaims.JWTID == secondClaims.JWTID {
		t.Fatalf("grant ids = %q, %q, want distinct non-empty ids", firstClaims.JWTID, secondClaims.JWTID)
	}
}

func TestValidateRejectsWrongOwner(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, issue := testConfigs(t, now)

	token, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}

	_, err = Validate(token, "owner-2", verify)
	if !apperrors.IsCode(err, apperrors.CodeVaultOwnerMismatch) {
		t.Fatalf("err = %v, want code %s", err, apperrors.CodeVaultOwnerMismatch)
	}
}

func TestValidateRejectsExpiredGrant(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, issue := testConfigs(t, now.Add(10*time.Minute))

	token, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}

	_, err = Validate(token, "owner-1", verify)
	if !apperrors.IsCode(err, apperrors.CodeVaultOwnerGrantExpired) {
		t.Fatalf("err = %v, want code %s", err, apperrors.CodeVaultOwnerGrantExpired)
	}
}

func TestValidateRejectsWrongKey(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, _ := testConfigs(t, now)
	_, otherPrivate := testKeys(t)
	issue := IssueConfig{
		Issuer:   "coinwrap-admin",
		Audience: "vault.v1",
		Key:      otherPrivate,
		TTL:      5 * time.Minute,
	}

	token, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}

	_, err = Validate(token, "owner-1", verify)
	if !apperrors.IsCode(err, apperrors.CodeVaultOwnerGrantInvalid) {
		t.Fatalf("err = %v, want code %s", err, apperrors.CodeVaultOwnerGrantInvalid)
	}
}

func TestValidateRejectsWrongIssuerAndAudience(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, issue := testConfigs(t, now)

	issue.Issuer = "someone-else"
	token, err := Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}
	if _, err := Validate(token, "owner-1", verify); !apperrors.IsCode(err, apperrors.CodeVaultOwnerGrantInvalid) {
		t.Fatalf("issuer mismatch err = %v, want code %s", err, apperrors.CodeVaultOwnerGrantInvalid)
	}

	issue.Issuer = "coinwrap-admin"
	issue.Audience = "other.v1"
	token, err = Issue(issue, "owner-1", now)
	if err != nil {
		t.Fatalf("issue grant: %v", err)
	}
	if _, err := Validate(token, "owner-1", verify); !apperrors.IsCode(err, apperrors.CodeVaultOwnerGrantInvalid) {
		t.Fatalf("audience mismatch err = %v, want code %s", err, apperrors.CodeVaultOwnerGrantInvalid)
	}
}

func TestValidateRequiresGrant(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	verify, _ := testConfigs(t, now)

	if _, err := Validate("   ", "owner-1", verify); !apperrors.IsCode(err, apperrors.CodeVaultOwnerGrantInvalid) {
		t.Fatalf("err = %v, want code %s", err, apperrors.CodeVaultOwnerGrantInvalid)
	}
}
