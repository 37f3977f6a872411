package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and verifies signed bearer tokens. Verification is
// stateless; expiry is the only termination mechanism.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl}
}

// Claims embeds the user identifier under the "id" claim.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Generate signs a token for the given user, expiring after the configured TTL.
func (m *JWTManager) Generate(userID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.TTL)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies the signature and expiry and returns the embedded claims.
// Malformed, tampered and expired tokens all fail.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
