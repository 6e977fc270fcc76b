package usecase

import (
	"context"
	"testing"
	"time"

	"transfer-booking/internal/dto/request"
	"transfer-booking/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// md5("secret"), the shape of a not-yet-migrated credential
const legacySecretDigest = "5ebe2294ecd0e0f08eab7690d2a6ee69"

func newTestAuthService(t *testing.T, passwordHash string) AuthService {
	t.Helper()
	config := &utils.Config{
		Admin: utils.AdminConfig{
			Email:        "admin@example.com",
			PasswordHash: passwordHash,
		},
		JWT: utils.JWTConfig{
			Secret:      "test-signing-secret",
			ExpiryHours: 8,
		},
	}
	return NewAuthService(config, zap.NewNop())
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	return hash
}

func TestValidateCredentialsModernScheme(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	admin := svc.ValidateCredentials("admin@example.com", "secret")
	if admin == nil {
		t.Fatal("ValidateCredentials() = nil, want admin identity")
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", admin.Email)
	}
	if admin.Role != "admin" {
		t.Errorf("Role = %q, want admin", admin.Role)
	}

	if got := svc.ValidateCredentials("admin@example.com", "wrong"); got != nil {
		t.Errorf("ValidateCredentials(wrong password) = %+v, want nil", got)
	}
}

func TestValidateCredentialsLegacyScheme(t *testing.T) {
	svc := newTestAuthService(t, legacySecretDigest)

	if admin := svc.ValidateCredentials("admin@example.com", "secret"); admin == nil {
		t.Error("ValidateCredentials() = nil, want legacy digest match")
	}
	if got := svc.ValidateCredentials("admin@example.com", "wrong"); got != nil {
		t.Errorf("ValidateCredentials(wrong password) = %+v, want nil", got)
	}
}

func TestValidateCredentialsRejects(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"blank email", "", "secret"},
		{"blank password", "admin@example.com", ""},
		{"wrong email", "other@example.com", "secret"},
		{"case-sensitive email", "Admin@example.com", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.ValidateCredentials(tt.email, tt.password); got != nil {
				t.Errorf("ValidateCredentials(%q, %q) = %+v, want nil", tt.email, tt.password, got)
			}
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Login() token empty")
	}

	admin := svc.VerifyToken(resp.Token)
	if admin == nil {
		t.Fatal("VerifyToken() = nil for freshly issued token")
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("Email = %q, want admin@example.com", admin.Email)
	}

	expiresAt, err := time.Parse(time.RFC3339, resp.ExpiresAt)
	if err != nil {
		t.Fatalf("ExpiresAt %q is not RFC3339: %v", resp.ExpiresAt, err)
	}
	until := time.Until(expiresAt)
	if until < 7*time.Hour || until > 9*time.Hour {
		t.Errorf("token expiry in %v, want about 8h", until)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("Login() error = nil, want invalid credentials")
	}
}

func TestVerifyTokenFailures(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	if got := svc.VerifyToken("not-a-token"); got != nil {
		t.Errorf("VerifyToken(malformed) = %+v, want nil", got)
	}

	// Signed with a different secret
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}
	if got := svc.VerifyToken(signed); got != nil {
		t.Errorf("VerifyToken(bad signature) = %+v, want nil", got)
	}

	// Expired token with the right secret
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err = expired.SignedString([]byte("test-signing-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	if got := svc.VerifyToken(signed); got != nil {
		t.Errorf("VerifyToken(expired) = %+v, want nil", got)
	}
}

func TestVerifyTokenLegacyClaimFallback(t *testing.T) {
	svc := newTestAuthService(t, bcryptHash(t, "secret"))

	// A legacy token carrying only sub and exp
	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := legacy.SignedString([]byte("test-signing-secret"))
	if err != nil {
		t.Fatalf("sign legacy token: %v", err)
	}

	admin := svc.VerifyToken(signed)
	if admin == nil {
		t.Fatal("VerifyToken(legacy) = nil, want fallback identity")
	}
	if admin.Email != "admin@example.com" {
		t.Errorf("Email = %q, want configured fallback", admin.Email)
	}
	if admin.Role != "admin" {
		t.Errorf("Role = %q, want configured fallback", admin.Role)
	}
}
