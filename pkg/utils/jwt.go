package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, wrong algorithm, expired token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity embedded in an access token.
type Claims struct {
	UserID  int64
	IsAdmin bool
}

// TokenManager issues and verifies self-contained HS256 tokens. The secret
// is process-wide configuration, set once at startup and never mutated.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the user id and admin flag, expiring at
// issue time + TTL.
func (tm *TokenManager) Issue(userID int64, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":      userID,
		"isAdmin": isAdmin,
		"exp":     now.Add(tm.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Verify validates signature and expiry and returns the embedded claims.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	payload, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// JSON numbers decode as float64
	id, ok := payload["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	isAdmin, _ := payload["isAdmin"].(bool)

	return &Claims{
		UserID:  int64(id),
		IsAdmin: isAdmin,
	}, nil
}
