package helper

import (
	"errors"
	"fmt"
	"time"

	"wedding_manager/constants"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the only token payload this system issues or accepts.
// Anything that does not decode into exactly this shape with the expected
// subject and role is treated as unauthenticated.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

func GenerateAdminToken(secret []byte) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Role: constants.TOKEN_ROLE,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   constants.TOKEN_SUBJECT,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(constants.TOKEN_TTL_SECOND * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseAdminToken verifies signature and expiry, then checks the claim shape.
func ParseAdminToken(secret []byte, tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if claims.Subject != constants.TOKEN_SUBJECT || claims.Role != constants.TOKEN_ROLE {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
