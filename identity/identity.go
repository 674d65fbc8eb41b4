package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is what the rest of the application knows about a caller.
type Identity struct {
	UserID string
	Name   string
	Role   string
}

// Provider issues bearer credentials and authenticates them back into an
// Identity. Handlers and the lifecycle engine only ever see the Identity;
// tokens and signing material stay inside the provider.
type Provider interface {
	Issue(id Identity, ttl time.Duration) (string, error)
	Identify(token string) (Identity, error)
}

// JWTProvider signs and verifies HS256 tokens with an injected secret.
type JWTProvider struct {
	secret []byte
}

func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) Issue(id Identity, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id.UserID,
		"name":    id.Name,
		"role":    id.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *JWTProvider) Identify(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid token claims")
	}

	var id Identity
	if v, ok := claims["user_id"].(string); ok {
		id.UserID = v
	}
	if v, ok := claims["name"].(string); ok {
		id.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}
	if id.UserID == "" {
		return Identity{}, errors.New("token missing user_id claim")
	}
	return id, nil
}
