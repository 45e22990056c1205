package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bootify/catalog-api/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("admin", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("admin", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WithinLeeway(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// Expired 10s ago: inside the 30s clock-skew leeway, still valid.
	issuedAt := time.Now().Add(-time.Hour - 10*time.Second)
	svc.now = func() time.Time { return issuedAt }
	token, err := svc.Issue("admin", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token within leeway must verify, got %v", err)
	}
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("admin", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("admin", []string{domain.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_Verify_RejectsWrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// alg=none token, signed with the empty signature golang-jwt requires.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"username": "admin",
		"roles":    []string{domain.RoleAdmin},
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected rejection of alg=none token")
	}
}

func TestTokenService_Verify_MissingUsername(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"roles": []string{domain.RoleUser},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	token, err := anon.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
