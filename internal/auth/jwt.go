package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer は発行するトークンの iss
const Issuer = "todo-grpc"

var (
	// 認証エラーをまとめる（Interceptor から判定しやすくするため）
	ErrInvalidToken = errors.New("invalid token")
)

type JWTAuthenticator struct {
	secret []byte
}

func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret: []byte(secret),
	}
}

// GenerateToken は HS256 のトークンを発行する
func (a *JWTAuthenticator) GenerateToken(sub string, ttl time.Duration) (string, error) {
	if sub == "" {
		return "", errors.New("subject must not be empty")
	}
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Validate はトークンを検証して subject を返す
func (a *JWTAuthenticator) Validate(rawToken string) (string, error) {
	var claims jwt.RegisteredClaims

	parsed, err := jwt.ParseWithClaims(rawToken, &claims, func(token *jwt.Token) (any, error) {
		return a.secret, nil
	},
		// HS256 以外は拒否
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
