package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

// FindByPublicID 预载所属测验，供归属链鉴权使用
func (r *QuestionRepository) FindByPublicID(publicID string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Quiz").Preload("Quiz.Author").
		Where("public_id = ?", publicID).First(&question).Error
	return &question, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

// DeleteCascade 删除题目及其候选答案和作答记录
func (r *QuestionRepository) DeleteCascade(questionID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteQuestionTree(tx, []uint{questionID})
	})
}
