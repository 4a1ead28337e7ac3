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
)

func TestQuestionCreate(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, _ := env.quiz.Create(claims, "测验", "", article.PublicID)

	t.Run("Success", func(t *testing.T) {
		view, err := env.question.Create(ctx, claims, quiz.PublicID, "单选题", "二选一", model.SingleChoice, "A", 1)
		if err != nil {
			t.Fatalf("创建题目失败: %v", err)
		}
		if view.Quiz != quiz.PublicID {
			t.Errorf("题目挂接测验 = %q, 期望 %q", view.Quiz, quiz.PublicID)
		}
		if view.QuestionType != model.SingleChoice {
			t.Errorf("题型 = %q", view.QuestionType)
		}
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := env.question.Create(ctx, claims, quiz.PublicID, "坏题", "", model.QuestionType("X"), "", 1)
		if !errors.Is(err, util.ErrValidation) {
			t.Errorf("非法题型应当被拒, 得到 %v", err)
		}
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		_, err := env.question.Create(ctx, claims, "no-such-quiz", "题", "", model.OpenQuestion, "", 1)
		if !errors.Is(err, util.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 得到 %v", err)
		}
	})

	t.Run("AnyTeacherMayAddToForeignQuiz", func(t *testing.T) {
		// 创建只受角色门禁约束，归属校验只作用于修改和删除
		colleague := env.createUser(t, "colleague", model.Teacher)
		if _, err := env.question.Create(ctx, claimsFor(colleague), quiz.PublicID, "同事的题", "", model.OpenQuestion, "", 3); err != nil {
			t.Errorf("其他教师向该测验添加题目失败: %v", err)
		}
	})
}

func TestQuestionUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	other := env.createUser(t, "other", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, _ := env.quiz.Create(claims, "测验", "", article.PublicID)
	question, err := env.question.Create(ctx, claims, quiz.PublicID, "原题干", "", model.SingleChoice, "", 1)
	if err != nil {
		t.Fatalf("创建题目失败: %v", err)
	}

	t.Run("PartialUpdate", func(t *testing.T) {
		order := 5
		got, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{Order: &order}, true)
		if err != nil {
			t.Fatalf("更新失败: %v", err)
		}
		if got.Order != 5 || got.Title != "原题干" {
			t.Errorf("更新结果 = %+v", got)
		}
	})

	t.Run("FullUpdateRequiresAllFields", func(t *testing.T) {
		title := "只有标题"
		_, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{Title: &title}, false)
		if !errors.Is(err, util.ErrValidation) {
			t.Errorf("全量更新缺字段应当失败, 得到 %v", err)
		}
	})

	t.Run("RelocateToAnotherQuiz", func(t *testing.T) {
		target, err := env.quiz.Create(claims, "另一个测验", "", article.PublicID)
		if err != nil {
			t.Fatalf("创建测验失败: %v", err)
		}
		got, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{QuizPublicID: &target.PublicID}, true)
		if err != nil {
			t.Fatalf("更新失败: %v", err)
		}
		if got.Quiz != target.PublicID {
			t.Errorf("挂接测验 = %q, 期望 %q", got.Quiz, target.PublicID)
		}

		// 挪回原测验并清理，后续子测试依赖原归属
		if _, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{QuizPublicID: &quiz.PublicID}, true); err != nil {
			t.Fatalf("还原失败: %v", err)
		}
		if err := env.quiz.Delete(ctx, claims, target.PublicID); err != nil {
			t.Fatalf("清理测验失败: %v", err)
		}
	})

	t.Run("RelocateToMissingQuiz", func(t *testing.T) {
		missing := "no-such-quiz"
		_, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{QuizPublicID: &missing}, true)
		if !errors.Is(err, util.ErrValidation) {
			t.Fatalf("期望 ErrValidation, 得到 %v", err)
		}
		if errors.Is(err, util.ErrNotFound) {
			t.Errorf("悬空测验引用不应返回 ErrNotFound")
		}
	})

	t.Run("InvalidTypeOnUpdate", func(t *testing.T) {
		bad := model.QuestionType("Z")
		_, err := env.question.Update(ctx, claims, question.PublicID, QuestionUpdate{QuestionType: &bad}, true)
		if !errors.Is(err, util.ErrValidation) {
			t.Errorf("非法题型应当被拒, 得到 %v", err)
		}
	})

	t.Run("MutationDeniedForNonOwner", func(t *testing.T) {
		// 归属校验沿题目到测验作者
		title := "被篡改"
		if _, err := env.question.Update(ctx, claimsFor(other), question.PublicID, QuestionUpdate{Title: &title}, true); !errors.Is(err, util.ErrNotOwner) {
			t.Fatalf("期望 ErrNotOwner, 得到 %v", err)
		}
		if err := env.question.Delete(ctx, claimsFor(other), question.PublicID); !errors.Is(err, util.ErrNotOwner) {
			t.Fatalf("期望 ErrNotOwner, 得到 %v", err)
		}
	})

	t.Run("DeleteCascadesAnswers", func(t *testing.T) {
		choice, err := env.questionAnswer.Create(ctx, claims, question.PublicID, "选项", 1)
		if err != nil {
			t.Fatalf("创建候选答案失败: %v", err)
		}
		if _, err := env.submittedAnswer.Create(ctx, question.PublicID, "", []string{choice.PublicID}); err != nil {
			t.Fatalf("提交作答失败: %v", err)
		}

		if err := env.question.Delete(ctx, claims, question.PublicID); err != nil {
			t.Fatalf("删除题目失败: %v", err)
		}

		if n := env.count(t, &model.QuestionAnswer{}); n != 0 {
			t.Errorf("候选答案残留 %d 行", n)
		}
		if n := env.count(t, &model.SubmittedAnswer{}); n != 0 {
			t.Errorf("作答残留 %d 行", n)
		}
		if n := env.countChoiceLinks(t); n != 0 {
			t.Errorf("作答选项关联残留 %d 行", n)
		}
		if n := env.count(t, &model.Quiz{}); n != 1 {
			t.Errorf("测验数 = %d, 期望 1", n)
		}
	})
}

func TestQuestionUploadImage(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, _ := env.quiz.Create(claims, "测验", "", article.PublicID)
	question, _ := env.question.Create(ctx, claims, quiz.PublicID, "配图题", "", model.OpenQuestion, "", 1)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("png.Encode 失败: %v", err)
	}

	view, err := env.question.UploadImage(ctx, claims, question.PublicID, buf)
	if err != nil {
		t.Fatalf("上传配图失败: %v", err)
	}
	if view.Image == "" {
		t.Error("上传后配图路径不应为空")
	}

	t.Run("DeniedForNonOwner", func(t *testing.T) {
		other := env.createUser(t, "other", model.Teacher)
		buf := new(bytes.Buffer)
		png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 10, 10)))
		if _, err := env.question.UploadImage(ctx, claimsFor(other), question.PublicID, buf); !errors.Is(err, util.ErrNotOwner) {
			t.Errorf("期望 ErrNotOwner, 得到 %v", err)
		}
	})
}
