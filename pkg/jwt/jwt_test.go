package jwt

import (
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"staffhub/backend/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  ttl,
	})
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(7 * 24 * time.Hour)

	token, err := m.Issue("user-1", "ann@example.com", "employee", "Engineering", "EMP0001", "Ann")
	if err != nil {
		t.Fatalf("Issue 应成功: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify 应成功: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("期望 UserID=user-1，实际=%s", claims.UserID)
	}
	if claims.Role != "employee" {
		t.Errorf("期望 Role=employee，实际=%s", claims.Role)
	}
	if claims.Department != "Engineering" {
		t.Errorf("期望 Department=Engineering，实际=%s", claims.Department)
	}
	if claims.EmployeeID != "EMP0001" {
		t.Errorf("期望 EmployeeID=EMP0001，实际=%s", claims.EmployeeID)
	}
	if claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time) != 7*24*time.Hour {
		t.Errorf("有效期应为 7 天，实际=%v", claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
	}
}

func TestVerify_Garbage(t *testing.T) {
	m := newTestManager(time.Hour)

	if _, err := m.Verify("not-a-token"); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-key-entirely-xxxx",
		TokenTTL:  time.Hour,
	})

	token, err := other.Issue("user-1", "ann@example.com", "employee", "Engineering", "EMP0001", "Ann")
	if err != nil {
		t.Fatalf("Issue 应成功: %v", err)
	}

	if _, err := m.Verify(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := newTestManager(-time.Minute) // 签发即过期

	token, err := m.Issue("user-1", "ann@example.com", "employee", "Engineering", "EMP0001", "Ann")
	if err != nil {
		t.Fatalf("Issue 应成功: %v", err)
	}

	// 过期与其他失败不可区分
	if _, err := m.Verify(token); err != ErrTokenInvalid {
		t.Errorf("过期 Token 期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestVerify_MissingIdentityFields(t *testing.T) {
	m := newTestManager(time.Hour)

	// 手工构造缺少 employeeId 的令牌：签名有效但身份字段不全
	now := time.Now()
	claims := Claims{
		UserID:     "user-1",
		Email:      "ann@example.com",
		Role:       "employee",
		Department: "Engineering",
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-key-for-unit-testing-2026"))
	if err != nil {
		t.Fatalf("构造测试 Token 失败: %v", err)
	}

	if _, err := m.Verify(token); err != ErrTokenInvalid {
		t.Errorf("字段不全的 Token 期望 ErrTokenInvalid，实际: %v", err)
	}
}
