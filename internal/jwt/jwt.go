// Package jwt provides functions for generating and validating JWTs
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultKID  = "1"
	JWTDuration = 24 * time.Hour
	issuer      = "foodgram"
)

var ErrInvalidClaims = errors.New("invalid token claims")

type JWTParams struct {
	Role   string
	UserID int64
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	return generateJWT(params, secret, version, time.Now())
}

func generateJWT(params JWTParams, secret []byte, version string, now time.Time) (string, error) {
	c := claims{
		Role: params.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(params.UserID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token.Header["kid"] = version

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateJWT parses rawToken and returns its subject and role. Errors from
// the jwt library are wrapped so callers can match jwt.ErrTokenExpired.
func ValidateJWT(rawToken, version string, secret []byte) (JWTParams, error) {
	keyFunc := func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}
		if kid != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kid)
		}
		return secret, nil
	}

	var c claims
	_, err := jwt.ParseWithClaims(rawToken, &c, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return JWTParams{}, fmt.Errorf("parsing token: %w", err)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return JWTParams{}, ErrInvalidClaims
	}

	return JWTParams{Role: c.Role, UserID: userID}, nil
}
