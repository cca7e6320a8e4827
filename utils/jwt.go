package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by staff tokens.
type Claims struct {
	WaiterID uint   `json:"waiterId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for a staff member.
func GenerateToken(waiterID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		WaiterID: waiterID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
