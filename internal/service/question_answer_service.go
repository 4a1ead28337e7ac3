package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type QuestionAnswerService struct {
	AnswerRepo   *repository.QuestionAnswerRepository
	QuestionRepo *repository.QuestionRepository
	QuizSvc      *QuizService
}

func NewQuestionAnswerService(answerRepo *repository.QuestionAnswerRepository, questionRepo *repository.QuestionRepository, quizSvc *QuizService) *QuestionAnswerService {
	return &QuestionAnswerService{
		AnswerRepo:   answerRepo,
		QuestionRepo: questionRepo,
		QuizSvc:      quizSvc,
	}
}

type QuestionAnswerUpdate struct {
	QuestionPublicID *string
	Value            *string
	Order            *int
}

// Create 创建候选答案 题目以公开ID引用
func (s *QuestionAnswerService) Create(ctx context.Context, claims *util.Claims, questionPublicID, value string, order int) (*QuestionAnswerView, error) {
	question, err := s.QuestionRepo.FindByPublicID(questionPublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	answer := &model.QuestionAnswer{
		QuestionID: question.ID,
		Value:      value,
		Order:      order,
	}
	if err := s.AnswerRepo.Create(answer); err != nil {
		return nil, err
	}
	answer.Question = *question

	s.QuizSvc.InvalidateCache(ctx, question.Quiz.PublicID)
	view := NewQuestionAnswerView(answer)
	return &view, nil
}

func (s *QuestionAnswerService) Get(publicID string) (*QuestionAnswerView, error) {
	answer, err := s.AnswerRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}
	view := NewQuestionAnswerView(answer)
	return &view, nil
}

func (s *QuestionAnswerService) Update(ctx context.Context, claims *util.Claims, publicID string, update QuestionAnswerUpdate, partial bool) (*QuestionAnswerView, error) {
	answer, err := s.AnswerRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	if err := CheckOwner(claims, QuestionAnswerOwnerID(answer)); err != nil {
		return nil, err
	}

	if !partial && update.Value == nil {
		return nil, fmt.Errorf("%w: value is required", util.ErrValidation)
	}

	previousQuiz := answer.Question.Quiz.PublicID
	if update.QuestionPublicID != nil {
		question, err := s.QuestionRepo.FindByPublicID(*update.QuestionPublicID)
		if err != nil {
			// 更新体里的悬空引用按校验失败处理，与创建保持一致
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: question %q does not exist", util.ErrValidation, *update.QuestionPublicID)
			}
			return nil, err
		}
		answer.QuestionID = question.ID
		answer.Question = *question
	}

	if update.Value != nil {
		answer.Value = *update.Value
	}
	if update.Order != nil {
		answer.Order = *update.Order
	}

	if err := s.AnswerRepo.Update(answer); err != nil {
		return nil, err
	}

	s.QuizSvc.InvalidateCache(ctx, answer.Question.Quiz.PublicID)
	if previousQuiz != answer.Question.Quiz.PublicID {
		s.QuizSvc.InvalidateCache(ctx, previousQuiz)
	}
	view := NewQuestionAnswerView(answer)
	return &view, nil
}

func (s *QuestionAnswerService) Delete(ctx context.Context, claims *util.Claims, publicID string) error {
	answer, err := s.AnswerRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := CheckOwner(claims, QuestionAnswerOwnerID(answer)); err != nil {
		return err
	}

	if err := s.AnswerRepo.Delete(answer.ID); err != nil {
		return err
	}

	s.QuizSvc.InvalidateCache(ctx, answer.Question.Quiz.PublicID)
	return nil
}
