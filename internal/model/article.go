package model

// swagger:model Article
type Article struct {
	PublicBase
	AuthorID    uint   `gorm:"index;not null" json:"-"`
	Author      User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:255" json:"image"`
}

func (Article) TableName() string {
	return "articles"
}
