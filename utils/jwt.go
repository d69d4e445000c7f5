package utils

import (
	"fmt"
	"time"

	"github.com/ChPurna2003/CravingConnect/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the full identity so the policy layer never has to look the
// caller up again mid-request.
type Claims struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Country  string `json:"country"`
	jwt.RegisteredClaims
}

func GenerateToken(user *entity.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		Country:  user.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Identity converts the claims back into the request-scoped caller.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     entity.Role(c.Role),
		Country:  c.Country,
	}
}
