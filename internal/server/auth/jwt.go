// Package auth issues and verifies the stateless session tokens handed out at
// login. There is no revocation list: a token stays valid until it expires.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is what a verified token tells downstream handlers about the caller.
type Identity struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// Claims is the JWT payload: the registered claims plus the caller's identity.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// now is a test seam for token issue time.
var now = time.Now

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	issuedAt := now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(validityDuration)),
		},
		Identity: id,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the embedded identity.
// Expired tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	if tokenString == "" {
		return Identity{}, common.ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return claims.Identity, nil
}
