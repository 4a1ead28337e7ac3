package service

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/util"
)

// 鉴权全部是对已加载状态的纯判定，不触发任何查询。
// 归属链：SubmittedAnswer → Question → Quiz → Author，
// QuestionAnswer → Question → Quiz → Author。

// CanManageContent 仅教师或后台账号可创建文章、测验、题目与候选答案
// 任何已登录用户都可读取，也可提交作答
func CanManageContent(role model.UserRole, isStaff bool) bool {
	return role == model.Teacher || isStaff
}

// CheckOwner 写操作要求操作者即归属链解析出的作者
// 不通过时返回 ErrNotOwner，与资源不存在是两种不同的结果
func CheckOwner(claims *util.Claims, ownerID uint) error {
	if claims == nil || claims.UserID != ownerID {
		return util.ErrNotOwner
	}
	return nil
}

// QuizOwnerID 测验的归属作者
func QuizOwnerID(quiz *model.Quiz) uint {
	return quiz.AuthorID
}

// QuestionOwnerID 题目沿归属链解析到测验作者 需预载Quiz
func QuestionOwnerID(question *model.Question) uint {
	return question.Quiz.AuthorID
}

// QuestionAnswerOwnerID 候选答案沿归属链解析到测验作者 需预载Question.Quiz
func QuestionAnswerOwnerID(answer *model.QuestionAnswer) uint {
	return answer.Question.Quiz.AuthorID
}

// SubmittedAnswerOwnerID 作答记录沿归属链解析到测验作者 需预载Question.Quiz
func SubmittedAnswerOwnerID(answer *model.SubmittedAnswer) uint {
	return answer.Question.Quiz.AuthorID
}
