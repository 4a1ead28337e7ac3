package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/util"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	t.Run("Success", func(t *testing.T) {
		user := env.createUser(t, "alice", model.Teacher)
		if user.Password == "corral2024" {
			t.Error("密码应当以哈希形式入库")
		}
		if user.PublicID == "" {
			t.Error("创建后应当分配公开ID")
		}

		stored, err := env.user.GetByID(user.ID)
		if err != nil {
			t.Fatalf("查询用户失败: %v", err)
		}
		if stored.Pfp != model.DefaultPfp {
			t.Errorf("新用户头像 = %q, 期望默认头像", stored.Pfp)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		env.createUser(t, "bob", model.Student)
		dup := &model.User{Email: "bob@example.com", Username: "bob2", Role: model.Student}
		if err := env.auth.Register(dup, "corral2024"); !errors.Is(err, util.ErrEmailRegistered) {
			t.Errorf("期望 ErrEmailRegistered, 得到 %v", err)
		}
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		dup := &model.User{Email: "new@example.com", Username: "bob", Role: model.Student}
		if err := env.auth.Register(dup, "corral2024"); !errors.Is(err, util.ErrUsernameTaken) {
			t.Errorf("期望 ErrUsernameTaken, 得到 %v", err)
		}
	})

	t.Run("WeakPassword", func(t *testing.T) {
		u := &model.User{Email: "weak@example.com", Username: "weak", Role: model.Student}
		if err := env.auth.Register(u, "12345678"); !errors.Is(err, util.ErrValidation) {
			t.Errorf("期望 ErrValidation, 得到 %v", err)
		}
	})
}

// 并发注册绕过先查后插时，唯一索引冲突要落到业务错误而不是500
func TestRegisterDuplicateKeyBackstop(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "dave", model.Teacher)

	t.Run("UniqueIndexTranslated", func(t *testing.T) {
		dup := &model.User{Email: "dave@example.com", Username: "dave2", Role: model.Student, Password: "哈希占位"}
		if err := env.auth.UserRepo.Create(dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
			t.Fatalf("期望 ErrDuplicatedKey, 得到 %v", err)
		}
	})

	t.Run("EmailConflict", func(t *testing.T) {
		dup := &model.User{Email: "dave@example.com", Username: "dave3"}
		if err := env.auth.classifyDuplicate(dup); !errors.Is(err, util.ErrEmailRegistered) {
			t.Errorf("期望 ErrEmailRegistered, 得到 %v", err)
		}
	})

	t.Run("UsernameConflict", func(t *testing.T) {
		dup := &model.User{Email: "fresh@example.com", Username: "dave"}
		if err := env.auth.classifyDuplicate(dup); !errors.Is(err, util.ErrUsernameTaken) {
			t.Errorf("期望 ErrUsernameTaken, 得到 %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "carol", model.Teacher)

	t.Run("Success", func(t *testing.T) {
		token, err := env.auth.Login("carol@example.com", "corral2024")
		if err != nil {
			t.Fatalf("登录失败: %v", err)
		}

		claims, err := util.ParseJWT(token, env.auth.Cfg.JWT.Secret)
		if err != nil {
			t.Fatalf("令牌解析失败: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("令牌 UserID = %d, 期望 %d", claims.UserID, user.ID)
		}
		if claims.Role != model.Teacher {
			t.Errorf("令牌 Role = %q", claims.Role)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		if _, err := env.auth.Login("carol@example.com", "wrong0000"); err == nil {
			t.Fatal("错误密码应当登录失败")
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		if _, err := env.auth.Login("nobody@example.com", "corral2024"); err == nil {
			t.Fatal("未注册邮箱应当登录失败")
		}
	})
}
