package controller

import (
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SubmittedAnswerController 处理作答相关的HTTP请求
type SubmittedAnswerController struct {
	SubmittedService *service.SubmittedAnswerService
}

// NewSubmittedAnswerController 创建一个新的作答控制器实例
func NewSubmittedAnswerController(submittedService *service.SubmittedAnswerService) *SubmittedAnswerController {
	return &SubmittedAnswerController{
		SubmittedService: submittedService,
	}
}

// SubmitAnswerRequest 定义作答提交请求结构
// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	Question        string   `json:"question" binding:"required"`
	Answer          string   `json:"answer"`
	QuestionAnswers []string `json:"question_answers"`
}

// Create godoc
// @Summary 提交作答
// @Description 选项必须全部属于所答题目，开放题填写文本
// @Tags 作答
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body SubmitAnswerRequest true "作答内容"
// @Success 201 {object} util.Response{data=service.SubmittedAnswerView} "提交成功"
// @Failure 400 {object} util.Response "请求参数错误、题目不存在或选项不属于该题目"
// @Failure 401 {object} util.Response "未授权"
// @Router /quiz/question/answer/submit/ [post]
func (c *SubmittedAnswerController) Create(ctx *gin.Context) {
	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.SubmittedService.Create(ctx.Request.Context(), req.Question, req.Answer, req.QuestionAnswers)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// Delete godoc
// @Summary 删除作答
// @Description 仅所属测验作者可操作
// @Tags 作答
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "作答公开ID"
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "作答不存在"
// @Router /quiz/question/answer/submit/id/{id}/ [delete]
func (c *SubmittedAnswerController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SubmittedService.Delete(claims, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
