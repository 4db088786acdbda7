// internal/auth/auth.go
package auth

import (
	"time"

	"go.uber.org/zap"
)

// DefaultTokenTTL は開発用トークンの有効期限
const DefaultTokenTTL = 24 * time.Hour

// アプリ全体で使う Authenticator のラッパ
type Authenticator struct {
	jwt    *JWTAuthenticator
	logger *zap.Logger
}

func NewAuthenticator(secret string, logger *zap.Logger) *Authenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authenticator{
		jwt:    NewJWTAuthenticator(secret),
		logger: logger,
	}
}

// ValidateToken はトークンを検証して subject を返す。失敗は常に ErrInvalidToken。
func (a *Authenticator) ValidateToken(raw string) (string, error) {
	sub, err := a.jwt.Validate(raw)
	if err != nil {
		// トークン本体はログに出さない
		a.logger.Info("invalid token", zap.Int("token_len", len(raw)), zap.Error(err))
		return "", ErrInvalidToken
	}
	return sub, nil
}

// GenerateToken は secret で署名したトークンを発行する（cmd/jwt_gen から使う）
func GenerateToken(secret, sub string, ttl time.Duration) (string, error) {
	return NewJWTAuthenticator(secret).GenerateToken(sub, ttl)
}
