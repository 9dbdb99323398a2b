package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-record-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, "acc-123", duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.AccountID != "acc-123" {
		t.Errorf("expected account acc-123, got %s", token.AccountID)
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != "acc-123" {
		t.Errorf("expected subject 'acc-123', got %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		accountID string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "acc", time.Hour, "key"},
		{"empty account", "issuer", "", time.Hour, "key"},
		{"zero duration", "issuer", "acc", 0, "key"},
		{"empty key", "issuer", "acc", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.accountID, tt.duration, tt.key); err == nil {
				t.Fatal("expected error for invalid params, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "acc-7", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "issuer")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.AccountID != "acc-7" {
		t.Errorf("expected account acc-7, got %s", parsed.AccountID)
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("issuer", "acc", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	expired, err := GenerateJWTToken("issuer", "acc", -time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "issuer"},
		{"wrong issuer", valid.SignedString, "key", "someone-else"},
		{"expired", expired.SignedString, "key", "issuer"},
		{"garbage", "not-a-token", "key", "issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "issuer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "issuer")
	if !errors.Is(err, models.ErrEmptyAccountID) {
		t.Fatalf("expected ErrEmptyAccountID, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc", "abc", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseAccountIDFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("issuer", "acc-9", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	accountID, err := ParseAccountIDFromJWT(token.SignedString)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if accountID != "acc-9" {
		t.Errorf("expected acc-9, got %s", accountID)
	}

	if _, err = ParseAccountIDFromJWT("garbage"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
