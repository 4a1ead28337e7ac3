package controller

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuestionController 处理题目相关的HTTP请求
type QuestionController struct {
	QuestionService *service.QuestionService
}

// NewQuestionController 创建一个新的题目控制器实例
func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{
		QuestionService: questionService,
	}
}

// CreateQuestionRequest 定义题目创建请求结构
// swagger:model CreateQuestionRequest
type CreateQuestionRequest struct {
	Quiz         string `json:"quiz" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	QuestionType string `json:"question_type" binding:"required,oneof=S M O"`
	Answer       string `json:"answer"`
	Order        int    `json:"order"`
}

// UpdateQuestionRequest 定义题目更新请求结构
// swagger:model UpdateQuestionRequest
type UpdateQuestionRequest struct {
	Quiz         *string `json:"quiz"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	QuestionType *string `json:"question_type"`
	Answer       *string `json:"answer"`
	Order        *int    `json:"order"`
}

// Create godoc
// @Summary 创建题目
// @Description 挂接到指定测验下，仅教师或管理员可用
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body CreateQuestionRequest true "题目内容"
// @Success 201 {object} util.Response{data=service.QuestionView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误或测验不存在"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "角色不允许"
// @Router /quiz/question/ [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.QuestionService.Create(ctx.Request.Context(), claims, req.Quiz,
		req.Title, req.Description, model.QuestionType(req.QuestionType), req.Answer, req.Order)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// Get godoc
// @Summary 获取题目
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目公开ID"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /quiz/question/id/{id}/ [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	view, err := c.QuestionService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Update godoc
// @Summary 更新题目
// @Description 全量更新，仅所属测验作者可操作
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目公开ID"
// @Param   request body UpdateQuestionRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /quiz/question/id/{id}/ [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	c.update(ctx, false)
}

// Patch godoc
// @Summary 局部更新题目
// @Tags 题目
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目公开ID"
// @Param   request body UpdateQuestionRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /quiz/question/id/{id}/ [patch]
func (c *QuestionController) Patch(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *QuestionController) update(ctx *gin.Context, partial bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := service.QuestionUpdate{
		QuizPublicID: req.Quiz,
		Title:        req.Title,
		Description:  req.Description,
		Answer:       req.Answer,
		Order:        req.Order,
	}
	if req.QuestionType != nil {
		qt := model.QuestionType(*req.QuestionType)
		update.QuestionType = &qt
	}

	view, err := c.QuestionService.Update(ctx.Request.Context(), claims, ctx.Param("id"), update, partial)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Delete godoc
// @Summary 删除题目
// @Description 级联删除候选答案与作答，仅所属测验作者可操作
// @Tags 题目
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目公开ID"
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /quiz/question/id/{id}/ [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.QuestionService.Delete(ctx.Request.Context(), claims, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// UploadImage godoc
// @Summary 上传题目配图
// @Description 图片按最长边1024等比缩放，仅所属测验作者可操作
// @Tags 题目
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "题目公开ID"
// @Param   image formData file true "图片文件"
// @Success 200 {object} util.Response{data=service.QuestionView} "成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /quiz/question/id/{id}/image/ [post]
func (c *QuestionController) UploadImage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	f, ok := openImageForm(ctx)
	if !ok {
		return
	}
	defer f.Close()

	view, err := c.QuestionService.UploadImage(ctx.Request.Context(), claims, ctx.Param("id"), f)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
