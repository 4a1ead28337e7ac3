package controller

import (
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestionAnswerController 处理候选答案相关的HTTP请求
type QuestionAnswerController struct {
	AnswerService *service.QuestionAnswerService
}

// NewQuestionAnswerController 创建一个新的候选答案控制器实例
func NewQuestionAnswerController(answerService *service.QuestionAnswerService) *QuestionAnswerController {
	return &QuestionAnswerController{
		AnswerService: answerService,
	}
}

// CreateQuestionAnswerRequest 定义候选答案创建请求结构
// swagger:model CreateQuestionAnswerRequest
type CreateQuestionAnswerRequest struct {
	Question string `json:"question" binding:"required"`
	Value    string `json:"value" binding:"required"`
	Order    int    `json:"order"`
}

// UpdateQuestionAnswerRequest 定义候选答案更新请求结构
// swagger:model UpdateQuestionAnswerRequest
type UpdateQuestionAnswerRequest struct {
	Question *string `json:"question"`
	Value    *string `json:"value"`
	Order    *int    `json:"order"`
}

// Create godoc
// @Summary 创建候选答案
// @Description 挂接到指定题目下，仅教师或管理员可用
// @Tags 候选答案
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body CreateQuestionAnswerRequest true "候选答案内容"
// @Success 201 {object} util.Response{data=service.QuestionAnswerView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误或题目不存在"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "角色不允许"
// @Router /quiz/question/answer/ [post]
func (c *QuestionAnswerController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuestionAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.AnswerService.Create(ctx.Request.Context(), claims, req.Question, req.Value, req.Order)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// Get godoc
// @Summary 获取候选答案
// @Tags 候选答案
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "候选答案公开ID"
// @Success 200 {object} util.Response{data=service.QuestionAnswerView} "成功"
// @Failure 404 {object} util.Response "候选答案不存在"
// @Router /quiz/question/answer/id/{id}/ [get]
func (c *QuestionAnswerController) Get(ctx *gin.Context) {
	view, err := c.AnswerService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Update godoc
// @Summary 更新候选答案
// @Description 全量更新，仅所属测验作者可操作
// @Tags 候选答案
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "候选答案公开ID"
// @Param   request body UpdateQuestionAnswerRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuestionAnswerView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "候选答案不存在"
// @Router /quiz/question/answer/id/{id}/ [put]
func (c *QuestionAnswerController) Update(ctx *gin.Context) {
	c.update(ctx, false)
}

// Patch godoc
// @Summary 局部更新候选答案
// @Tags 候选答案
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "候选答案公开ID"
// @Param   request body UpdateQuestionAnswerRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuestionAnswerView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "候选答案不存在"
// @Router /quiz/question/answer/id/{id}/ [patch]
func (c *QuestionAnswerController) Patch(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *QuestionAnswerController) update(ctx *gin.Context, partial bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateQuestionAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.AnswerService.Update(ctx.Request.Context(), claims, ctx.Param("id"), service.QuestionAnswerUpdate{
		QuestionPublicID: req.Question,
		Value:            req.Value,
		Order:            req.Order,
	}, partial)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Delete godoc
// @Summary 删除候选答案
// @Description 同时清理引用它的作答选项，仅所属测验作者可操作
// @Tags 候选答案
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "候选答案公开ID"
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "候选答案不存在"
// @Router /quiz/question/answer/id/{id}/ [delete]
func (c *QuestionAnswerController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AnswerService.Delete(ctx.Request.Context(), claims, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
