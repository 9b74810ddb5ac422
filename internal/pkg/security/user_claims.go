package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TODO: 上线前把密钥挪到配置里
const (
	JWTSecret         = "daily-sunrise-secret-key"
	JWTExpirationTime = 72 * time.Hour
)

// UserClaims 自定义的 JWT Claims
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
