// Package token issues and verifies the signed bearer tokens used by the API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptySecret = errors.New("token secret is empty")
	ErrExpired     = errors.New("token has expired")
	ErrInvalid     = errors.New("invalid token")
)

// Claims represents JWT token claims.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens carrying a user identity.
type Issuer interface {
	Issue(userID int64) (string, error)
	Verify(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

type jwtIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewIssuer creates an HS256 issuer. Tokens live for expiry.
func NewIssuer(secret string, expiry time.Duration) (Issuer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got %s", expiry)
	}
	return &jwtIssuer{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}, nil
}

func (i *jwtIssuer) Expiry() time.Duration {
	return i.expiry
}

func (i *jwtIssuer) Issue(userID int64) (string, error) {
	now := i.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

func (i *jwtIssuer) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID <= 0 {
		return nil, ErrInvalid
	}

	return claims, nil
}
