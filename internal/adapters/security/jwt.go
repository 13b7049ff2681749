package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTVerifier validates HS256 access tokens minted by the identity service.
// This service never signs tokens; it only checks them at the edge.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

type accessTokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (v *JWTVerifier) ParseAndValidate(raw string) (ports.AuthClaims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &accessTokenClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return ports.AuthClaims{}, err
	}
	claims, ok := parsed.Claims.(*accessTokenClaims)
	if !ok || !parsed.Valid {
		return ports.AuthClaims{}, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ports.AuthClaims{}, fmt.Errorf("parse user_id: %w", err)
	}

	out := ports.AuthClaims{
		UserID: userID,
		Email:  claims.Email,
		Role:   claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}
	return out, nil
}
