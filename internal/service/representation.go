package service

import (
	"corralsnake_backend/internal/model"
)

// 每个实体有基础表示，部分操作返回内嵌关联实体的扩展表示。
// 表示由操作决定，调用方不可选择。

// FriendView 用户的对外精简表示
type FriendView struct {
	PublicID  string `json:"public_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Pfp       string `json:"pfp"`
}

type ArticleView struct {
	PublicID    string     `json:"public_id"`
	Author      FriendView `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
}

type QuizView struct {
	PublicID    string      `json:"public_id"`
	Author      FriendView  `json:"author"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Article     ArticleView `json:"article"`
}

type QuestionView struct {
	PublicID     string             `json:"public_id"`
	Quiz         string             `json:"quiz"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Image        string             `json:"image"`
	QuestionType model.QuestionType `json:"question_type"`
	Answer       string             `json:"answer"`
	Order        int                `json:"order"`
}

type QuestionAnswerView struct {
	PublicID string `json:"public_id"`
	Question string `json:"question"`
	Value    string `json:"value"`
	Order    int    `json:"order"`
}

// QuestionFullView 题目及其有序候选答案
type QuestionFullView struct {
	PublicID        string               `json:"public_id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Image           string               `json:"image"`
	QuestionType    model.QuestionType   `json:"question_type"`
	Answer          string               `json:"answer"`
	Order           int                  `json:"order"`
	PossibleAnswers []QuestionAnswerView `json:"possible_answers"`
}

// QuizFullView 检索测验时返回的完整表示 内嵌有序题目树
type QuizFullView struct {
	PublicID    string             `json:"public_id"`
	Author      FriendView         `json:"author"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Article     string             `json:"article"`
	Questions   []QuestionFullView `json:"questions"`
}

type SubmittedAnswerView struct {
	PublicID        string   `json:"public_id"`
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	QuestionAnswers []string `json:"question_answers"`
}

func NewFriendView(user *model.User) FriendView {
	return FriendView{
		PublicID:  user.PublicID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Pfp:       user.Pfp,
	}
}

func NewArticleView(article *model.Article) ArticleView {
	return ArticleView{
		PublicID:    article.PublicID,
		Author:      NewFriendView(&article.Author),
		Title:       article.Title,
		Description: article.Description,
		Image:       article.Image,
	}
}

func NewQuizView(quiz *model.Quiz) QuizView {
	return QuizView{
		PublicID:    quiz.PublicID,
		Author:      NewFriendView(&quiz.Author),
		Title:       quiz.Title,
		Description: quiz.Description,
		Article:     NewArticleView(&quiz.Article),
	}
}

func NewQuestionView(question *model.Question) QuestionView {
	return QuestionView{
		PublicID:     question.PublicID,
		Quiz:         question.Quiz.PublicID,
		Title:        question.Title,
		Description:  question.Description,
		Image:        question.Image,
		QuestionType: question.QuestionType,
		Answer:       question.Answer,
		Order:        question.Order,
	}
}

func NewQuestionAnswerView(answer *model.QuestionAnswer) QuestionAnswerView {
	return QuestionAnswerView{
		PublicID: answer.PublicID,
		Question: answer.Question.PublicID,
		Value:    answer.Value,
		Order:    answer.Order,
	}
}

func NewQuizFullView(quiz *model.Quiz, questions []model.Question) QuizFullView {
	view := QuizFullView{
		PublicID:    quiz.PublicID,
		Author:      NewFriendView(&quiz.Author),
		Title:       quiz.Title,
		Description: quiz.Description,
		Article:     quiz.Article.PublicID,
		Questions:   make([]QuestionFullView, 0, len(questions)),
	}

	for i := range questions {
		q := &questions[i]
		qv := QuestionFullView{
			PublicID:        q.PublicID,
			Title:           q.Title,
			Description:     q.Description,
			Image:           q.Image,
			QuestionType:    q.QuestionType,
			Answer:          q.Answer,
			Order:           q.Order,
			PossibleAnswers: make([]QuestionAnswerView, 0, len(q.PossibleAnswers)),
		}
		for j := range q.PossibleAnswers {
			a := &q.PossibleAnswers[j]
			qv.PossibleAnswers = append(qv.PossibleAnswers, QuestionAnswerView{
				PublicID: a.PublicID,
				Question: q.PublicID,
				Value:    a.Value,
				Order:    a.Order,
			})
		}
		view.Questions = append(view.Questions, qv)
	}

	return view
}

func NewSubmittedAnswerView(answer *model.SubmittedAnswer) SubmittedAnswerView {
	view := SubmittedAnswerView{
		PublicID:        answer.PublicID,
		Question:        answer.Question.PublicID,
		Answer:          answer.Answer,
		QuestionAnswers: make([]string, 0, len(answer.Choices)),
	}
	for i := range answer.Choices {
		view.QuestionAnswers = append(view.QuestionAnswers, answer.Choices[i].PublicID)
	}
	return view
}
