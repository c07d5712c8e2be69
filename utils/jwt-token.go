package utils

import (
	"errors"
	"fmt"
	"time"

	"coolenergy/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

type SignedDetails struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const tokenLifetime = 24 * time.Hour

// SignedToken mints a stateless session token for the given role. There is
// no server-side session store; validity is signature plus expiry.
func SignedToken(role, secret string) (string, error) {
	claims := &SignedDetails{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "coolenergy",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.New("error signing token")
	}
	return signedToken, nil
}

// VerifyToken parses and validates a session token. Malformed, badly signed
// and expired tokens all come back as ErrInvalidToken; the caller must treat
// that as a hard authorization failure, never as something to retry.
func VerifyToken(tokenString, secret string) (*SignedDetails, error) {
	claims := &SignedDetails{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
