package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"corralsnake_backend/pkg/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 完整测验树的读缓存时长 任何子树写操作都会使其失效
const quizCacheTTL = 10 * time.Minute

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	ArticleRepo *repository.ArticleRepository
	Storage     *StorageService
	Redis       *redis.Client
}

func NewQuizService(quizRepo *repository.QuizRepository, articleRepo *repository.ArticleRepository, storage *StorageService, rdb *redis.Client) *QuizService {
	return &QuizService{
		QuizRepo:    quizRepo,
		ArticleRepo: articleRepo,
		Storage:     storage,
		Redis:       rdb,
	}
}

type QuizUpdate struct {
	Title           *string
	Description     *string
	ArticlePublicID *string
}

func quizCacheKey(publicID string) string {
	return "quiz:full:" + publicID
}

func (s *QuizService) InvalidateCache(ctx context.Context, publicID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, quizCacheKey(publicID)).Err(); err != nil && err != redis.Nil {
		logger.Log.Warn("quiz cache invalidation failed", zap.String("quiz", publicID), zap.Error(err))
	}
}

// Create 创建测验 文章以公开ID引用，不存在视为校验失败
func (s *QuizService) Create(claims *util.Claims, title, description, articlePublicID string) (*QuizView, error) {
	article, err := s.ArticleRepo.FindByPublicID(articlePublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	quiz := &model.Quiz{
		AuthorID:    claims.UserID,
		ArticleID:   article.ID,
		Title:       title,
		Description: description,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}

	created, err := s.QuizRepo.FindByPublicID(quiz.PublicID)
	if err != nil {
		return nil, err
	}
	view := NewQuizView(created)
	return &view, nil
}

// GetFull 检索测验的完整表示 优先走Redis缓存
func (s *QuizService) GetFull(ctx context.Context, publicID string) (*QuizFullView, error) {
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, quizCacheKey(publicID)).Result()
		if err == nil {
			var cached QuizFullView
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	quiz, err := s.QuizRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	questions, err := s.QuizRepo.FindQuestions(quiz.ID)
	if err != nil {
		return nil, err
	}

	view := NewQuizFullView(quiz, questions)

	if s.Redis != nil {
		if data, err := json.Marshal(view); err == nil {
			if err := s.Redis.Set(ctx, quizCacheKey(publicID), data, quizCacheTTL).Err(); err != nil {
				logger.Log.Warn("quiz cache write failed", zap.String("quiz", publicID), zap.Error(err))
			}
		}
	}

	return &view, nil
}

func (s *QuizService) Update(ctx context.Context, claims *util.Claims, publicID string, update QuizUpdate, partial bool) (*QuizView, error) {
	quiz, err := s.QuizRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, QuizOwnerID(quiz)); err != nil {
		return nil, err
	}

	if !partial && (update.Title == nil || update.Description == nil || update.ArticlePublicID == nil) {
		return nil, fmt.Errorf("%w: title, description and article_public_id are required", util.ErrValidation)
	}

	if update.Title != nil {
		quiz.Title = *update.Title
	}
	if update.Description != nil {
		quiz.Description = *update.Description
	}
	if update.ArticlePublicID != nil {
		article, err := s.ArticleRepo.FindByPublicID(*update.ArticlePublicID)
		if err != nil {
			// 更新体里的悬空引用按校验失败处理，与创建保持一致
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: article %q does not exist", util.ErrValidation, *update.ArticlePublicID)
			}
			return nil, err
		}
		quiz.ArticleID = article.ID
		quiz.Article = *article
	}

	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}

	s.InvalidateCache(ctx, publicID)
	view := NewQuizView(quiz)
	return &view, nil
}

// Delete 删除测验并级联其题目、候选答案与作答记录
func (s *QuizService) Delete(ctx context.Context, claims *util.Claims, publicID string) error {
	quiz, err := s.QuizRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := CheckOwner(claims, QuizOwnerID(quiz)); err != nil {
		return err
	}

	questionImages, err := s.QuizRepo.QuestionImages(quiz.ID)
	if err != nil {
		return err
	}

	if err := s.QuizRepo.DeleteCascade(quiz.ID); err != nil {
		return err
	}

	s.InvalidateCache(ctx, publicID)
	for _, image := range questionImages {
		s.Storage.Delete(ctx, image)
	}
	return nil
}
