package model

type QuestionType string

// 题目类型 S单选 M多选 O开放题
const (
	SingleChoice   QuestionType = "S"
	MultipleChoice QuestionType = "M"
	OpenQuestion   QuestionType = "O"
)

func (t QuestionType) Valid() bool {
	switch t {
	case SingleChoice, MultipleChoice, OpenQuestion:
		return true
	}
	return false
}

// swagger:model Question
type Question struct {
	PublicBase
	QuizID       uint         `gorm:"index;not null" json:"-"`
	Quiz         Quiz         `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"-"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Image        string       `gorm:"size:255" json:"image"`
	QuestionType QuestionType `gorm:"size:255;not null" json:"question_type"`
	Answer       string       `gorm:"size:255" json:"answer"`
	Order        int          `gorm:"column:order;default:0" json:"order"`

	// 同一道题的候选答案 按order排序展示
	PossibleAnswers []QuestionAnswer `gorm:"foreignKey:QuestionID" json:"possible_answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}
