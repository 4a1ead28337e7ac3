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

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	QuizRepo     *repository.QuizRepository
	Storage      *StorageService
	QuizSvc      *QuizService
}

func NewQuestionService(questionRepo *repository.QuestionRepository, quizRepo *repository.QuizRepository, storage *StorageService, quizSvc *QuizService) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		QuizRepo:     quizRepo,
		Storage:      storage,
		QuizSvc:      quizSvc,
	}
}

type QuestionUpdate struct {
	QuizPublicID *string
	Title        *string
	Description  *string
	QuestionType *model.QuestionType
	Answer       *string
	Order        *int
}

// Create 创建题目 测验以公开ID引用
func (s *QuestionService) Create(ctx context.Context, claims *util.Claims, quizPublicID, title, description string, questionType model.QuestionType, answer string, order int) (*QuestionView, error) {
	if !questionType.Valid() {
		return nil, fmt.Errorf("%w: invalid question type %q", util.ErrValidation, questionType)
	}

	quiz, err := s.QuizRepo.FindByPublicID(quizPublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	question := &model.Question{
		QuizID:       quiz.ID,
		Title:        title,
		Description:  description,
		QuestionType: questionType,
		Answer:       answer,
		Order:        order,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	question.Quiz = *quiz

	s.QuizSvc.InvalidateCache(ctx, quiz.PublicID)
	view := NewQuestionView(question)
	return &view, nil
}

func (s *QuestionService) Get(publicID string) (*QuestionView, error) {
	question, err := s.QuestionRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	view := NewQuestionView(question)
	return &view, nil
}

func (s *QuestionService) Update(ctx context.Context, claims *util.Claims, publicID string, update QuestionUpdate, partial bool) (*QuestionView, error) {
	question, err := s.QuestionRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, QuestionOwnerID(question)); err != nil {
		return nil, err
	}

	if !partial && (update.Title == nil || update.Description == nil || update.QuestionType == nil) {
		return nil, fmt.Errorf("%w: title, description and question_type are required", util.ErrValidation)
	}

	previousQuiz := question.Quiz.PublicID
	if update.QuizPublicID != nil {
		quiz, err := s.QuizRepo.FindByPublicID(*update.QuizPublicID)
		if err != nil {
			// 更新体里的悬空引用按校验失败处理，与创建保持一致
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: quiz %q does not exist", util.ErrValidation, *update.QuizPublicID)
			}
			return nil, err
		}
		question.QuizID = quiz.ID
		question.Quiz = *quiz
	}

	if update.Title != nil {
		question.Title = *update.Title
	}
	if update.Description != nil {
		question.Description = *update.Description
	}
	if update.QuestionType != nil {
		if !update.QuestionType.Valid() {
			return nil, fmt.Errorf("%w: invalid question type %q", util.ErrValidation, *update.QuestionType)
		}
		question.QuestionType = *update.QuestionType
	}
	if update.Answer != nil {
		question.Answer = *update.Answer
	}
	if update.Order != nil {
		question.Order = *update.Order
	}

	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}

	s.QuizSvc.InvalidateCache(ctx, question.Quiz.PublicID)
	if previousQuiz != question.Quiz.PublicID {
		s.QuizSvc.InvalidateCache(ctx, previousQuiz)
	}
	view := NewQuestionView(question)
	return &view, nil
}

// Delete 删除题目并级联其候选答案与作答记录
func (s *QuestionService) Delete(ctx context.Context, claims *util.Claims, publicID string) error {
	question, err := s.QuestionRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := CheckOwner(claims, QuestionOwnerID(question)); err != nil {
		return err
	}

	if err := s.QuestionRepo.DeleteCascade(question.ID); err != nil {
		return err
	}

	s.QuizSvc.InvalidateCache(ctx, question.Quiz.PublicID)
	if question.Image != "" {
		s.Storage.Delete(ctx, question.Image)
	}
	return nil
}

// UploadImage 上传题目配图 超大图等比压缩
func (s *QuestionService) UploadImage(ctx context.Context, claims *util.Claims, publicID string, reader io.Reader) (*QuestionView, error) {
	question, err := s.QuestionRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, QuestionOwnerID(question)); err != nil {
		return nil, err
	}

	bounded, err := util.BoundImage(reader, util.MaxImageBound)
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("questions/images/%s.png", model.GenerateUUID())
	if _, err := s.Storage.Upload(ctx, filename, bounded, int64(bounded.Len()), "image/png"); err != nil {
		return nil, err
	}

	old := question.Image
	question.Image = filename
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}

	if old != "" {
		s.Storage.Delete(ctx, old)
	}

	s.QuizSvc.InvalidateCache(ctx, question.Quiz.PublicID)
	view := NewQuestionView(question)
	return &view, nil
}
