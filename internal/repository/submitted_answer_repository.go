package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

type SubmittedAnswerRepository struct {
	DB *gorm.DB
}

func NewSubmittedAnswerRepository(db *gorm.DB) *SubmittedAnswerRepository {
	return &SubmittedAnswerRepository{DB: db}
}

// Create 连同选中的候选答案关联一并写入
func (r *SubmittedAnswerRepository) Create(answer *model.SubmittedAnswer) error {
	return r.DB.Create(answer).Error
}

// FindByPublicID 预载题目、测验与选中的候选答案
func (r *SubmittedAnswerRepository) FindByPublicID(publicID string) (*model.SubmittedAnswer, error) {
	var answer model.SubmittedAnswer
	err := r.DB.Preload("Question").Preload("Question.Quiz").Preload("Choices").
		Where("public_id = ?", publicID).First(&answer).Error
	return &answer, err
}

func (r *SubmittedAnswerRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.SubmittedAnswer{}).Count(&count).Error
	return count, err
}

// Delete 同时清理选项关联行
func (r *SubmittedAnswerRepository) Delete(answerID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM submitted_answer_choices WHERE submitted_answer_id = ?", answerID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SubmittedAnswer{}, answerID).Error
	})
}
