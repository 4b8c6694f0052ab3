// Package auth implements the observable contract of the authentication
// collaborator: credential checks, signed profile tokens and role gating.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/seogestao/condogest/internal/domain/models"
)

const tokenTTL = 24 * time.Hour

// ProfileFetchTimeout bounds profile lookups on the session refresh path;
// expiry degrades to the token's claims instead of failing the request.
const ProfileFetchTimeout = 5 * time.Second

// ErrInvalidToken indicates the bearer token failed validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the profile payload carried in the session token.
type Claims struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         models.Role `json:"role"`
	FractionCode string      `json:"fraction_code,omitempty"`
	jwt.RegisteredClaims
}

// Profile reconstructs the resolved profile from the claims.
func (c *Claims) Profile() models.Profile {
	return models.Profile{
		ID:           c.Subject,
		Name:         c.Name,
		Email:        c.Email,
		Role:         c.Role,
		FractionCode: c.FractionCode,
	}
}

// TokenIssuer signs and validates profile tokens.
type TokenIssuer struct {
	secret []byte
}

// NewTokenIssuer creates an issuer with the configured signing secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret)}
}

// Issue signs a token carrying the profile.
func (t *TokenIssuer) Issue(p models.Profile) (string, error) {
	claims := Claims{
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		FractionCode: p.FractionCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "condogest",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a token, returning its claims.
func (t *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// HashPassword derives a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
