package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims issued by the identity provider.
// UserID is the provider's opaque subject identifier.
type AuthClaims struct {
	UserID               string `json:"user_id" example:"usr_2aFh8xKq"`
	Name                 string `json:"name" example:"Jordan Lee"`
	Email                string `json:"email" example:"jordan.lee@berkeley.k12.us"`
	AvatarURL            string `json:"avatar_url,omitempty"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService validates and issues bearer tokens
type AuthService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		secret: []byte(secret),
		issuer: "berkconnect-backend",
		ttl:    24 * time.Hour,
	}
}

// GenerateJWT issues a signed token for the given identity
func (s *AuthService) GenerateJWT(userID, name, email, avatarURL string) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:    userID,
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
