package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionAnswerRepository struct {
	DB *gorm.DB
}

func NewQuestionAnswerRepository(db *gorm.DB) *QuestionAnswerRepository {
	return &QuestionAnswerRepository{DB: db}
}

func (r *QuestionAnswerRepository) Create(answer *model.QuestionAnswer) error {
	return r.DB.Create(answer).Error
}

// FindByPublicID 预载题目与测验，供归属链鉴权使用
func (r *QuestionAnswerRepository) FindByPublicID(publicID string) (*model.QuestionAnswer, error) {
	var answer model.QuestionAnswer
	err := r.DB.Preload("Question").Preload("Question.Quiz").
		Where("public_id = ?", publicID).First(&answer).Error
	return &answer, err
}

// FindByPublicIDs 批量解析公开ID，提交作答时校验选项归属
func (r *QuestionAnswerRepository) FindByPublicIDs(publicIDs []string) ([]model.QuestionAnswer, error) {
	var answers []model.QuestionAnswer
	if len(publicIDs) == 0 {
		return answers, nil
	}
	err := r.DB.Where("public_id IN ?", publicIDs).Find(&answers).Error
	return answers, err
}

func (r *QuestionAnswerRepository) Update(answer *model.QuestionAnswer) error {
	return r.DB.Save(answer).Error
}

// Delete 同时清理引用该选项的作答关联行
func (r *QuestionAnswerRepository) Delete(answerID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM submitted_answer_choices WHERE question_answer_id = ?", answerID,
		).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuestionAnswer{}, answerID).Error
	})
}
