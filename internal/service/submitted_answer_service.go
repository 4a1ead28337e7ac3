package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SubmittedAnswerService struct {
	SubmittedRepo *repository.SubmittedAnswerRepository
	AnswerRepo    *repository.QuestionAnswerRepository
	QuestionRepo  *repository.QuestionRepository
}

func NewSubmittedAnswerService(submittedRepo *repository.SubmittedAnswerRepository, answerRepo *repository.QuestionAnswerRepository, questionRepo *repository.QuestionRepository) *SubmittedAnswerService {
	return &SubmittedAnswerService{
		SubmittedRepo: submittedRepo,
		AnswerRepo:    answerRepo,
		QuestionRepo:  questionRepo,
	}
}

// Create 记录一次作答 任何已登录用户均可提交
// 选中的候选答案必须全部属于所作答的题目，否则视为校验失败
func (s *SubmittedAnswerService) Create(ctx context.Context, questionPublicID, answer string, choicePublicIDs []string) (*SubmittedAnswerView, error) {
	question, err := s.QuestionRepo.FindByPublicID(questionPublicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, err
	}

	choices, err := s.AnswerRepo.FindByPublicIDs(choicePublicIDs)
	if err != nil {
		return nil, err
	}
	if len(choices) != len(choicePublicIDs) {
		return nil, util.ErrChoiceMismatch
	}
	for i := range choices {
		if choices[i].QuestionID != question.ID {
			return nil, util.ErrChoiceMismatch
		}
	}

	submitted := &model.SubmittedAnswer{
		QuestionID: question.ID,
		Answer:     answer,
		Choices:    choices,
	}
	if err := s.SubmittedRepo.Create(submitted); err != nil {
		return nil, err
	}
	submitted.Question = *question

	view := NewSubmittedAnswerView(submitted)
	return &view, nil
}

// Delete 仅归属链上的测验作者可删除作答记录
func (s *SubmittedAnswerService) Delete(claims *util.Claims, publicID string) error {
	submitted, err := s.SubmittedRepo.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotFound
		}
		return err
	}

	if err := CheckOwner(claims, SubmittedAnswerOwnerID(submitted)); err != nil {
		return err
	}

	return s.SubmittedRepo.Delete(submitted.ID)
}
