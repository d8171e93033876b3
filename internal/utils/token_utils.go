package utils

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of a session JWT. The subject is the user ID;
// name, last name and role travel with it so requests need no user lookup.
type SessionClaims struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the caller identity.
func (c *SessionClaims) Identity() domain.Identity {
	role := domain.UserRole(c.Role)
	if role == "" {
		role = domain.RoleUser
	}
	return domain.Identity{
		UserID:   c.Subject,
		Name:     c.Name,
		LastName: c.LastName,
		Role:     role,
	}
}

// GenerateJWT signs a session token for identity and returns it with its expiry.
func GenerateJWT(identity domain.Identity, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := SessionClaims{
		Name:     identity.Name,
		LastName: identity.LastName,
		Role:     string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a session token, validates its signature and standard claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
