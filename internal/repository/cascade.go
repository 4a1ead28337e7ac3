package repository

import (
	"corralsnake_backend/internal/model"

	"gorm.io/gorm"
)

// 级联删除在仓库层显式完成（子表在前），不依赖数据库引擎的
// ON DELETE CASCADE，保证MySQL与测试用sqlite行为一致，并让
// 上层有机会先收集待清理的图片。

func deleteQuestionTree(tx *gorm.DB, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}

	// 先清理作答与候选答案的关联表
	if err := tx.Exec(
		"DELETE FROM submitted_answer_choices WHERE submitted_answer_id IN (SELECT id FROM submitted_answers WHERE question_id IN ?)",
		questionIDs,
	).Error; err != nil {
		return err
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.SubmittedAnswer{}).Error; err != nil {
		return err
	}
	if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuestionAnswer{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", questionIDs).Delete(&model.Question{}).Error
}

func deleteQuizTree(tx *gorm.DB, quizIDs []uint) error {
	if len(quizIDs) == 0 {
		return nil
	}

	var questionIDs []uint
	if err := tx.Model(&model.Question{}).Where("quiz_id IN ?", quizIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if err := deleteQuestionTree(tx, questionIDs); err != nil {
		return err
	}
	return tx.Where("id IN ?", quizIDs).Delete(&model.Quiz{}).Error
}

func deleteArticleTree(tx *gorm.DB, articleID uint) error {
	var quizIDs []uint
	if err := tx.Model(&model.Quiz{}).Where("article_id = ?", articleID).Pluck("id", &quizIDs).Error; err != nil {
		return err
	}
	if err := deleteQuizTree(tx, quizIDs); err != nil {
		return err
	}
	return tx.Delete(&model.Article{}, articleID).Error
}
