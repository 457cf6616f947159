package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Init sets the signing secret used to validate incoming tokens.
// Token issuance is handled by a separate identity service; this
// process only ever parses.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// Claims 是访问令牌携带的用户身份
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
