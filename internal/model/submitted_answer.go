package model

// SubmittedAnswer 学生对一道题的一次作答
// 允许同一道题存在多次作答记录，不与提交者绑定
// swagger:model SubmittedAnswer
type SubmittedAnswer struct {
	PublicBase
	QuestionID uint     `gorm:"index;not null" json:"-"`
	Question   Question `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`
	Answer     string   `gorm:"size:255" json:"answer"`

	// 选中的候选答案 必须属于所作答的题目
	Choices []QuestionAnswer `gorm:"many2many:submitted_answer_choices" json:"-"`
}

func (SubmittedAnswer) TableName() string {
	return "submitted_answers"
}
