package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyAccountID is returned when a token carries no subject.
var ErrEmptyAccountID = errors.New("token has an empty account id")

// Token wraps a JWT account token with convenience accessors.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. The "sub" claim holds the account identifier
// that owns every zone the bearer touches.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// AccountID is the parsed "sub" claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the account identifier stored in the "sub" claim.
func (t *Token) GetAccountID() (string, error) {
	accountID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting AccountID from token: %w", err)
	}
	if accountID == "" {
		return "", ErrEmptyAccountID
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
