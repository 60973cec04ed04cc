package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"staffhub/backend/config"
)

// ErrTokenInvalid Token 验证失败
// 过期、篡改、格式错误与字段缺失统一折叠为同一错误，不向调用方泄露区别
var ErrTokenInvalid = errors.New("token 无效")

// Claims 身份令牌声明
// userId / email / role / department / employeeId 五个身份字段缺一不可
type Claims struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department"`
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	jwtv5.RegisteredClaims
}

// complete 检查五个身份字段是否齐全
func (c *Claims) complete() bool {
	return c.UserID != "" && c.Email != "" && c.Role != "" &&
		c.Department != "" && c.EmployeeID != ""
}

// Manager JWT 管理器
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewManager 创建 JWT 管理器
// 密钥非空由 config.Validate 在启动时保证
func NewManager(cfg *config.AuthConfig) *Manager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: ttl,
	}
}

// Issue 签发身份令牌，自签发起 7 天内有效
func (m *Manager) Issue(userID, email, role, department, employeeID, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:     userID,
		Email:      email,
		Role:       role,
		Department: department,
		EmployeeID: employeeID,
		Name:       name,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
			Issuer:    "staffhub",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify 解析并验证身份令牌
// 签名有效、未过期且身份字段齐全时返回声明，否则一律返回 ErrTokenInvalid
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.complete() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
