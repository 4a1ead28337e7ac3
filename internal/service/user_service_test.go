package service

import (
	"bytes"
	"context"
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/util"
	"errors"
	"image"
	"image/png"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUserUpdate(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "dave", model.Student)

	t.Run("PartialUpdate", func(t *testing.T) {
		first := "Dave"
		got, err := env.user.Update(user.ID, UserUpdate{FirstName: &first}, true)
		if err != nil {
			t.Fatalf("更新失败: %v", err)
		}
		if got.FirstName != "Dave" {
			t.Errorf("FirstName = %q", got.FirstName)
		}
	})

	t.Run("FullUpdateRequiresNames", func(t *testing.T) {
		first := "Dave"
		_, err := env.user.Update(user.ID, UserUpdate{FirstName: &first}, false)
		if !errors.Is(err, util.ErrValidation) {
			t.Errorf("全量更新缺字段应当失败, 得到 %v", err)
		}
	})

	t.Run("PasswordRehashed", func(t *testing.T) {
		pw := "newpass123"
		got, err := env.user.Update(user.ID, UserUpdate{Password: &pw}, true)
		if err != nil {
			t.Fatalf("改密失败: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(got.Password), []byte(pw)); err != nil {
			t.Error("新密码哈希校验失败")
		}
	})

	t.Run("WeakPasswordRejected", func(t *testing.T) {
		pw := "short"
		if _, err := env.user.Update(user.ID, UserUpdate{Password: &pw}, true); !errors.Is(err, util.ErrValidation) {
			t.Errorf("弱口令应当被拒, 得到 %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		first := "Nobody"
		if _, err := env.user.Update(99999, UserUpdate{FirstName: &first}, true); !errors.Is(err, util.ErrUserNotFound) {
			t.Errorf("期望 ErrUserNotFound, 得到 %v", err)
		}
	})
}

func TestUserPfpAndDelete(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "erin", model.Student)
	ctx := context.Background()

	t.Run("UploadReplacesPfp", func(t *testing.T) {
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 64, 32))); err != nil {
			t.Fatalf("png.Encode 失败: %v", err)
		}

		got, err := env.user.UploadPfp(ctx, user.ID, buf)
		if err != nil {
			t.Fatalf("上传头像失败: %v", err)
		}
		if got.Pfp == model.DefaultPfp || got.Pfp == "" {
			t.Errorf("头像路径 = %q, 应当已替换默认头像", got.Pfp)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := env.user.Delete(ctx, user.ID); err != nil {
			t.Fatalf("删除用户失败: %v", err)
		}
		if _, err := env.user.GetByID(user.ID); err == nil {
			t.Error("删除后仍能查到用户")
		}
	})
}
