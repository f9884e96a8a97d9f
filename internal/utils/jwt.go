package utils // package utils provides helper functions for token creation and hashing

import (
	"errors" // errors defines the sentinel returned for every verification failure
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessTokenTTL is the fixed lifetime of an access token.  A claim set's
// expiry is always exactly this duration after issuance; there is no
// revocation list, so a token stays valid for its full lifetime regardless
// of subsequent account changes.
const AccessTokenTTL = 24 * time.Hour

// ErrInvalidToken is returned for every verification failure.  Expired,
// tampered and malformed tokens are deliberately indistinguishable so the
// caller cannot learn why a token was rejected.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload embedded in an access token: subject id,
// email and role plus the registered expiry and issued-at timestamps.  It
// is never stored server-side; the identity on a request is recreated from
// the token alone.
type Claims struct {
	Email string `json:"email"` // account email at issuance time
	Role  string `json:"role"`  // account role at issuance time
	jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, email and role, and returns the serialized
// token along with its expiration time.
func NewAccessToken(secret, userID, email, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(AccessTokenTTL)
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseAccessToken verifies a serialized token against the secret and
// returns its claims.  The signing method must be HMAC and the expiry claim
// must be present, since every issued token carries one; any signature,
// expiry or format problem yields ErrInvalidToken.
func ParseAccessToken(secret, raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
