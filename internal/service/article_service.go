package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
)

type ArticleService struct {
	ArticleRepo *repository.ArticleRepository
	QuizRepo    *repository.QuizRepository
	Storage     *StorageService
	QuizSvc     *QuizService
}

func NewArticleService(articleRepo *repository.ArticleRepository, quizRepo *repository.QuizRepository, storage *StorageService, quizSvc *QuizService) *ArticleService {
	return &ArticleService{
		ArticleRepo: articleRepo,
		QuizRepo:    quizRepo,
		Storage:     storage,
		QuizSvc:     quizSvc,
	}
}

type ArticleUpdate struct {
	Title       *string
	Description *string
}

// 文章描述的最大长度
const maxArticleDescription = 10000

func validateArticleDescription(description string) error {
	if len([]rune(description)) > maxArticleDescription {
		return fmt.Errorf("%w: description exceeds %d characters", util.ErrValidation, maxArticleDescription)
	}
	return nil
}

func (s *ArticleService) Create(claims *util.Claims, title, description string) (*ArticleView, error) {
	if err := validateArticleDescription(description); err != nil {
		return nil, err
	}

	article := &model.Article{
		AuthorID:    claims.UserID,
		Title:       title,
		Description: description,
	}
	if err := s.ArticleRepo.Create(article); err != nil {
		return nil, err
	}

	created, err := s.ArticleRepo.FindByPublicID(article.PublicID)
	if err != nil {
		return nil, err
	}
	view := NewArticleView(created)
	return &view, nil
}

func (s *ArticleService) Get(publicID string) (*ArticleView, error) {
	article, err := s.ArticleRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	view := NewArticleView(article)
	return &view, nil
}

func (s *ArticleService) List(search string) ([]ArticleView, error) {
	articles, err := s.ArticleRepo.FindAll(search)
	if err != nil {
		return nil, err
	}

	views := make([]ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, NewArticleView(&articles[i]))
	}
	return views, nil
}

func (s *ArticleService) Update(claims *util.Claims, publicID string, update ArticleUpdate, partial bool) (*ArticleView, error) {
	article, err := s.ArticleRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, article.AuthorID); err != nil {
		return nil, err
	}

	if !partial && (update.Title == nil || update.Description == nil) {
		return nil, fmt.Errorf("%w: title and description are required", util.ErrValidation)
	}

	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Description != nil {
		if err := validateArticleDescription(*update.Description); err != nil {
			return nil, err
		}
		article.Description = *update.Description
	}

	if err := s.ArticleRepo.Update(article); err != nil {
		return nil, err
	}
	view := NewArticleView(article)
	return &view, nil
}

// Delete 删除文章并级联其全部测验子树，同时清理相关图片
func (s *ArticleService) Delete(ctx context.Context, claims *util.Claims, publicID string) error {
	article, err := s.ArticleRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := CheckOwner(claims, article.AuthorID); err != nil {
		return err
	}

	// 删除前收集子树图片与受影响的测验缓存
	questionImages, err := s.ArticleRepo.QuestionImages(article.ID)
	if err != nil {
		return err
	}
	quizzes, err := s.QuizRepo.FindByArticleID(article.ID)
	if err != nil {
		return err
	}

	if err := s.ArticleRepo.DeleteCascade(article.ID); err != nil {
		return err
	}

	for _, quiz := range quizzes {
		s.QuizSvc.InvalidateCache(ctx, quiz.PublicID)
	}
	if article.Image != "" {
		s.Storage.Delete(ctx, article.Image)
	}
	for _, image := range questionImages {
		s.Storage.Delete(ctx, image)
	}
	return nil
}

// UploadImage 上传文章配图 超大图等比压缩
func (s *ArticleService) UploadImage(ctx context.Context, claims *util.Claims, publicID string, reader io.Reader) (*ArticleView, error) {
	article, err := s.ArticleRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, article.AuthorID); err != nil {
		return nil, err
	}

	bounded, err := util.BoundImage(reader, util.MaxImageBound)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("article/images/%s.png", model.GenerateUUID())
	if _, err := s.Storage.Upload(ctx, filename, bounded, int64(bounded.Len()), "image/png"); err != nil {
		return nil, err
	}

	old := article.Image
	article.Image = filename
	if err := s.ArticleRepo.Update(article); err != nil {
		return nil, err
	}

	if old != "" {
		s.Storage.Delete(ctx, old)
	}

	view := NewArticleView(article)
	return &view, nil
}
