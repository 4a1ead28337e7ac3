package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	DB *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{DB: db}
}

func (r *ArticleRepository) Create(article *model.Article) error {
	return r.DB.Create(article).Error
}

func (r *ArticleRepository) FindByPublicID(publicID string) (*model.Article, error) {
	var article model.Article
	err := r.DB.Preload("Author").Where("public_id = ?", publicID).First(&article).Error
	return &article, err
}

// FindAll 按创建顺序返回，search非空时对标题做模糊过滤
func (r *ArticleRepository) FindAll(search string) ([]model.Article, error) {
	var articles []model.Article
	query := r.DB.Preload("Author").Order("id asc")
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	err := query.Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) Update(article *model.Article) error {
	return r.DB.Save(article).Error
}

// DeleteCascade 删除文章及其全部测验子树
func (r *ArticleRepository) DeleteCascade(articleID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return deleteArticleTree(tx, articleID)
	})
}

// QuestionImages 收集文章子树下所有题目图片，删除前调用以便清理存储
func (r *ArticleRepository) QuestionImages(articleID uint) ([]string, error) {
	var images []string
	err := r.DB.Model(&model.Question{}).
		Joins("JOIN quizzes ON quizzes.id = questions.quiz_id").
		Where("quizzes.article_id = ? AND questions.image <> ''", articleID).
		Pluck("questions.image", &images).Error
	return images, err
}
