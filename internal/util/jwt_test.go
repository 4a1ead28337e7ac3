package util

import (
	"corralsnake_backend/internal/model"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-that-is-long-enough-1234"

func testUser() *model.User {
	u := &model.User{
		Email: "teacher@example.com",
		Role:  model.Teacher,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, time.Hour)
		if err != nil {
			t.Fatalf("GenerateJWT 失败: %v", err)
		}

		claims, err := ParseJWT(token, testSecret)
		if err != nil {
			t.Fatalf("ParseJWT 失败: %v", err)
		}
		if claims.UserID != 42 {
			t.Errorf("UserID = %d, 期望 42", claims.UserID)
		}
		if claims.Role != model.Teacher {
			t.Errorf("Role = %q, 期望 %q", claims.Role, model.Teacher)
		}
		if claims.Email != "teacher@example.com" {
			t.Errorf("Email = %q", claims.Email)
		}
		if claims.IsStaff {
			t.Error("IsStaff 应为 false")
		}
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT 失败: %v", err)
		}

		_, err = ParseJWT(token, testSecret)
		if err == nil {
			t.Fatal("过期令牌应当解析失败")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("期望 ErrTokenExpired, 得到 %v", err)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateJWT(testUser(), testSecret, time.Hour)
		if err != nil {
			t.Fatalf("GenerateJWT 失败: %v", err)
		}

		if _, err := ParseJWT(token, "another-secret-entirely-0000000000"); err == nil {
			t.Fatal("错误密钥签发的令牌应当解析失败")
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := ParseJWT("not-a-token", testSecret); err == nil {
			t.Fatal("非法字符串应当解析失败")
		}
	})
}
