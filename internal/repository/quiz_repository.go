package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByPublicID(publicID string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Author").Preload("Article").Preload("Article.Author").
		Where("public_id = ?", publicID).First(&quiz).Error
	return &quiz, err
}

// FindQuestions 返回测验下的全部题目，按order排序并预载有序的候选答案
func (r *QuizRepository) FindQuestions(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("quiz_id = ?", quizID).
		Order("`order` asc, id asc").
		Preload("PossibleAnswers", func(db *gorm.DB) *gorm.DB {
			return db.Order("`order` asc, id asc")
		}).
		Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) FindByArticleID(articleID uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Where("article_id = ?", articleID).Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// DeleteCascade 删除测验及其题目、候选答案和作答记录
func (r *QuizRepository) DeleteCascade(quizID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteQuizTree(tx, []uint{quizID})
	})
}

// QuestionImages 收集测验下所有题目图片，删除前调用以便清理存储
func (r *QuizRepository) QuestionImages(quizID uint) ([]string, error) {
	var images []string
	err := r.DB.Model(&model.Question{}).
		Where("quiz_id = ? AND image <> ''", quizID).
		Pluck("image", &images).Error
	return images, err
}
