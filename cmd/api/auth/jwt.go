package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Claims is the decoded identity carried by an access token.
type Claims struct {
	UserID   string
	Username string
	Role     string
}

// JWTManager issues and verifies HS256 tokens with a single secret string.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManagerFromEnv reads the secret and issuer from the environment.
//
// - JWT_SECRET: HS256 signing secret (required)
// - JWT_ISSUER: iss claim value (optional, defaults to "news-cms")
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "news-cms"
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    24 * time.Hour,
	}, nil
}

func (m *JWTManager) Sign(userID, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"role":     role,
		"iss":      m.issuer,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *JWTManager) Parse(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return Claims{}, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return Claims{}, fmt.Errorf("token missing sub claim")
	}

	return Claims{UserID: sub, Username: username, Role: role}, nil
}
