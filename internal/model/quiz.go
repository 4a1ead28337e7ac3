package model

// swagger:model Quiz
type Quiz struct {
	PublicBase
	AuthorID    uint    `gorm:"index;not null" json:"-"`
	Author      User    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	ArticleID   uint    `gorm:"index;not null" json:"-"`
	Article     Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
