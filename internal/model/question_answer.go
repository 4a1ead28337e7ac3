package model

// QuestionAnswer 题目的候选答案
// swagger:model QuestionAnswer
type QuestionAnswer struct {
	PublicBase
	QuestionID uint     `gorm:"index;not null" json:"-"`
	Question   Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Value      string   `gorm:"size:255" json:"value"`
	Order      int      `gorm:"column:order;default:0" json:"order"`
}

func (QuestionAnswer) TableName() string {
	return "question_answers"
}
