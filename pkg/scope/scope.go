// Package scope issues and verifies the JWTs that carry a request's
// identity. Handlers downstream only ever see the decoded Payload.
package scope

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = time.Hour

// Payload is the verified identity carried in a token.
type Payload struct {
	Cardnumber string
	Username   string
}

// Manager signs and verifies tokens.
type Manager interface {
	Issue(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	Cardnumber string `json:"cardnumber"`
	Username   string `json:"username"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a HS256 token manager with the given secret.
func NewManager(secret string) Manager {
	return &jwtManager{
		secret: []byte(secret),
		ttl:    DefaultTTL,
	}
}

func (m *jwtManager) Issue(payload Payload) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Cardnumber: payload.Cardnumber,
		Username:   payload.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *jwtManager) Verify(tokenString string) (Payload, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Payload{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return Payload{}, fmt.Errorf("invalid token")
	}

	return Payload{Cardnumber: c.Cardnumber, Username: c.Username}, nil
}
