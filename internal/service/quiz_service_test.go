package service

import (
	"context"
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/util"
	"errors"
	"testing"
)

func TestQuizCreate(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	claims := claimsFor(teacher)

	article, err := env.article.Create(claims, "文章", "")
	if err != nil {
		t.Fatalf("创建文章失败: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		quiz, err := env.quiz.Create(claims, "期中测验", "覆盖前五章", article.PublicID)
		if err != nil {
			t.Fatalf("创建测验失败: %v", err)
		}
		if quiz.Article.PublicID != article.PublicID {
			t.Errorf("测验挂接文章 = %q, 期望 %q", quiz.Article.PublicID, article.PublicID)
		}
		if quiz.Author.Username != "teacher" {
			t.Errorf("作者 = %q", quiz.Author.Username)
		}
	})

	t.Run("UnknownArticle", func(t *testing.T) {
		if _, err := env.quiz.Create(claims, "孤儿测验", "", "no-such-article"); !errors.Is(err, util.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 得到 %v", err)
		}
	})
}

func TestQuizGetFullOrdering(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, err := env.quiz.Create(claims, "顺序测验", "", article.PublicID)
	if err != nil {
		t.Fatalf("创建测验失败: %v", err)
	}

	// 乱序创建，读取时必须按order升序返回
	second, err := env.question.Create(ctx, claims, quiz.PublicID, "第二题", "", model.MultipleChoice, "", 2)
	if err != nil {
		t.Fatalf("创建题目失败: %v", err)
	}
	first, err := env.question.Create(ctx, claims, quiz.PublicID, "第一题", "", model.SingleChoice, "", 1)
	if err != nil {
		t.Fatalf("创建题目失败: %v", err)
	}

	if _, err := env.questionAnswer.Create(ctx, claims, first.PublicID, "选项B", 2); err != nil {
		t.Fatalf("创建候选答案失败: %v", err)
	}
	if _, err := env.questionAnswer.Create(ctx, claims, first.PublicID, "选项A", 1); err != nil {
		t.Fatalf("创建候选答案失败: %v", err)
	}

	full, err := env.quiz.GetFull(ctx, quiz.PublicID)
	if err != nil {
		t.Fatalf("检索完整测验失败: %v", err)
	}

	if full.Article != article.PublicID {
		t.Errorf("Article = %q, 期望文章公开ID", full.Article)
	}
	if len(full.Questions) != 2 {
		t.Fatalf("题目数 = %d, 期望 2", len(full.Questions))
	}
	if full.Questions[0].PublicID != first.PublicID || full.Questions[1].PublicID != second.PublicID {
		t.Errorf("题目顺序错误: %q, %q", full.Questions[0].Title, full.Questions[1].Title)
	}

	answers := full.Questions[0].PossibleAnswers
	if len(answers) != 2 {
		t.Fatalf("候选答案数 = %d, 期望 2", len(answers))
	}
	if answers[0].Value != "选项A" || answers[1].Value != "选项B" {
		t.Errorf("候选答案顺序错误: %q, %q", answers[0].Value, answers[1].Value)
	}

	t.Run("Missing", func(t *testing.T) {
		if _, err := env.quiz.GetFull(ctx, "no-such-quiz"); !errors.Is(err, util.ErrNotFound) {
			t.Errorf("期望 ErrNotFound, 得到 %v", err)
		}
	})
}

func TestQuizUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.createUser(t, "teacher", model.Teacher)
	other := env.createUser(t, "other", model.Teacher)
	claims := claimsFor(teacher)
	ctx := context.Background()

	article, _ := env.article.Create(claims, "文章", "")
	quiz, err := env.quiz.Create(claims, "原标题", "", article.PublicID)
	if err != nil {
		t.Fatalf("创建测验失败: %v", err)
	}

	t.Run("PartialUpdate", func(t *testing.T) {
		title := "新标题"
		got, err := env.quiz.Update(ctx, claims, quiz.PublicID, QuizUpdate{Title: &title}, true)
		if err != nil {
			t.Fatalf("更新失败: %v", err)
		}
		if got.Title != "新标题" {
			t.Errorf("标题 = %q", got.Title)
		}
	})

	t.Run("RelocateToAnotherArticle", func(t *testing.T) {
		target, _ := env.article.Create(claims, "另一篇", "")
		got, err := env.quiz.Update(ctx, claims, quiz.PublicID, QuizUpdate{ArticlePublicID: &target.PublicID}, true)
		if err != nil {
			t.Fatalf("更新失败: %v", err)
		}
		if got.Article.PublicID != target.PublicID {
			t.Errorf("挂接文章 = %q, 期望 %q", got.Article.PublicID, target.PublicID)
		}
	})

	t.Run("RelocateToMissingArticle", func(t *testing.T) {
		missing := "no-such-article"
		_, err := env.quiz.Update(ctx, claims, quiz.PublicID, QuizUpdate{ArticlePublicID: &missing}, true)
		// 悬空引用是请求体的问题，按校验失败而非404处理
		if !errors.Is(err, util.ErrValidation) {
			t.Fatalf("期望 ErrValidation, 得到 %v", err)
		}
		if errors.Is(err, util.ErrNotFound) {
			t.Errorf("悬空文章引用不应返回 ErrNotFound")
		}
	})

	t.Run("UpdateByNonOwner", func(t *testing.T) {
		title := "被篡改"
		if _, err := env.quiz.Update(ctx, claimsFor(other), quiz.PublicID, QuizUpdate{Title: &title}, true); !errors.Is(err, util.ErrNotOwner) {
			t.Fatalf("期望 ErrNotOwner, 得到 %v", err)
		}
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		question, err := env.question.Create(ctx, claims, quiz.PublicID, "题目", "", model.OpenQuestion, "", 1)
		if err != nil {
			t.Fatalf("创建题目失败: %v", err)
		}
		if _, err := env.submittedAnswer.Create(ctx, question.PublicID, "自由作答", nil); err != nil {
			t.Fatalf("提交作答失败: %v", err)
		}

		if err := env.quiz.Delete(ctx, claimsFor(other), quiz.PublicID); !errors.Is(err, util.ErrNotOwner) {
			t.Fatalf("非作者删除应当被拒, 得到 %v", err)
		}

		if err := env.quiz.Delete(ctx, claims, quiz.PublicID); err != nil {
			t.Fatalf("删除失败: %v", err)
		}

		if n := env.count(t, &model.Question{}); n != 0 {
			t.Errorf("题目残留 %d 行", n)
		}
		if n := env.count(t, &model.SubmittedAnswer{}); n != 0 {
			t.Errorf("作答残留 %d 行", n)
		}
		// 文章本身不受影响
		if n := env.count(t, &model.Article{}); n != 2 {
			t.Errorf("文章数 = %d, 期望 2", n)
		}
	})
}
