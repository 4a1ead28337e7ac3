package service

import (
	"context"
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/util"
	"errors"
	"testing"
)

func TestSubmittedAnswerCreate(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, _ := env.quiz.Create(claims, "测验", "", article.PublicID)
	question, _ := env.question.Create(ctx, claims, quiz.PublicID, "多选题", "", model.MultipleChoice, "", 1)
	choiceA, _ := env.questionAnswer.Create(ctx, claims, question.PublicID, "A", 1)
	choiceB, _ := env.questionAnswer.Create(ctx, claims, question.PublicID, "B", 2)

	otherQuestion, _ := env.question.Create(ctx, claims, quiz.PublicID, "别的题", "", model.SingleChoice, "", 2)
	foreignChoice, _ := env.questionAnswer.Create(ctx, claims, otherQuestion.PublicID, "C", 1)

	t.Run("Success", func(t *testing.T) {
		view, err := env.submittedAnswer.Create(ctx, question.PublicID, "", []string{choiceA.PublicID, choiceB.PublicID})
		if err != nil {
			t.Fatalf("提交作答失败: %v", err)
		}
		if view.Question != question.PublicID {
			t.Errorf("作答题目 = %q", view.Question)
		}
		if len(view.QuestionAnswers) != 2 {
			t.Errorf("选项数 = %d, 期望 2", len(view.QuestionAnswers))
		}
	})

	t.Run("OpenAnswerWithoutChoices", func(t *testing.T) {
		open, _ := env.question.Create(ctx, claims, quiz.PublicID, "开放题", "", model.OpenQuestion, "", 3)
		view, err := env.submittedAnswer.Create(ctx, open.PublicID, "自由文本", nil)
		if err != nil {
			t.Fatalf("提交开放作答失败: %v", err)
		}
		if view.Answer != "自由文本" {
			t.Errorf("作答内容 = %q", view.Answer)
		}
	})

	t.Run("ResubmissionAllowed", func(t *testing.T) {
		if _, err := env.submittedAnswer.Create(ctx, question.PublicID, "", []string{choiceA.PublicID}); err != nil {
			t.Fatalf("再次作答失败: %v", err)
		}
		n, err := env.submittedRepo.Count()
		if err != nil {
			t.Fatalf("统计失败: %v", err)
		}
		if n != 3 {
			t.Errorf("作答记录数 = %d, 期望 3", n)
		}
	})

	t.Run("ForeignChoiceRejected", func(t *testing.T) {
		_, err := env.submittedAnswer.Create(ctx, question.PublicID, "", []string{choiceA.PublicID, foreignChoice.PublicID})
		if !errors.Is(err, util.ErrChoiceMismatch) {
			t.Errorf("别题的选项应当被拒, 得到 %v", err)
		}
	})

	t.Run("UnknownChoiceRejected", func(t *testing.T) {
		_, err := env.submittedAnswer.Create(ctx, question.PublicID, "", []string{"no-such-choice"})
		if !errors.Is(err, util.ErrChoiceMismatch) {
			t.Errorf("不存在的选项应当被拒, 得到 %v", err)
		}
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		_, err := env.submittedAnswer.Create(ctx, "no-such-question", "", nil)
		if !errors.Is(err, util.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 得到 %v", err)
		}
	})
}

func TestSubmittedAnswerDelete(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	student := env.createUser(t, "student", model.Student)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, _ := env.quiz.Create(claims, "测验", "", article.PublicID)
	question, _ := env.question.Create(ctx, claims, quiz.PublicID, "题目", "", model.OpenQuestion, "", 1)

	submitted, err := env.submittedAnswer.Create(ctx, question.PublicID, "作答", nil)
	if err != nil {
		t.Fatalf("提交作答失败: %v", err)
	}

	t.Run("DeniedForNonOwner", func(t *testing.T) {
		// 作答记录归属链解析到测验作者，提交者本人无删除权
		if err := env.submittedAnswer.Delete(claimsFor(student), submitted.PublicID); !errors.Is(err, util.ErrNotOwner) {
			t.Fatalf("期望 ErrNotOwner, 得到 %v", err)
		}
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		if err := env.submittedAnswer.Delete(claims, submitted.PublicID); err != nil {
			t.Fatalf("删除失败: %v", err)
		}
		if n := env.count(t, &model.SubmittedAnswer{}); n != 0 {
			t.Errorf("作答残留 %d 行", n)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if err := env.submittedAnswer.Delete(claims, submitted.PublicID); !errors.Is(err, util.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 得到 %v", err)
		}
	})
}
