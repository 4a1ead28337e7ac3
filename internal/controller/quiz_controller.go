package controller

import (
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController 处理测验相关的HTTP请求
type QuizController struct {
	QuizService *service.QuizService
}

// NewQuizController 创建一个新的测验控制器实例
func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{
		QuizService: quizService,
	}
}

// CreateQuizRequest 定义测验创建请求结构
// swagger:model CreateQuizRequest
type CreateQuizRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Article     string `json:"article" binding:"required"`
}

// UpdateQuizRequest 定义测验更新请求结构
// swagger:model UpdateQuizRequest
type UpdateQuizRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Article     *string `json:"article"`
}

// Create godoc
// @Summary 创建测验
// @Description 挂接到指定文章下，仅教师或管理员可用
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body CreateQuizRequest true "测验内容"
// @Success 201 {object} util.Response{data=service.QuizView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误或文章不存在"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "角色不允许"
// @Router /quiz/ [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.QuizService.Create(claims, req.Title, req.Description, req.Article)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// Get godoc
// @Summary 获取完整测验
// @Description 返回测验及其按顺序排列的全部题目与候选答案
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验公开ID"
// @Success 200 {object} util.Response{data=service.QuizFullView} "成功"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quiz/id/{id}/ [get]
func (c *QuizController) Get(ctx *gin.Context) {
	view, err := c.QuizService.GetFull(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Update godoc
// @Summary 更新测验
// @Description 全量更新，仅作者可操作
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验公开ID"
// @Param   request body UpdateQuizRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuizView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quiz/id/{id}/ [put]
func (c *QuizController) Update(ctx *gin.Context) {
	c.update(ctx, false)
}

// Patch godoc
// @Summary 局部更新测验
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验公开ID"
// @Param   request body UpdateQuizRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuizView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quiz/id/{id}/ [patch]
func (c *QuizController) Patch(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *QuizController) update(ctx *gin.Context, partial bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.QuizService.Update(ctx.Request.Context(), claims, ctx.Param("id"), service.QuizUpdate{
		Title:           req.Title,
		Description:     req.Description,
		ArticlePublicID: req.Article,
	}, partial)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Delete godoc
// @Summary 删除测验
// @Description 级联删除题目、候选答案与作答，仅作者可操作
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "测验公开ID"
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "测验不存在"
// @Router /quiz/id/{id}/ [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuizService.Delete(ctx.Request.Context(), claims, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}
