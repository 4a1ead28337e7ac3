package controller

import (
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

// ArticleController 处理文章相关的HTTP请求
type ArticleController struct {
	ArticleService *service.ArticleService
}

// NewArticleController 创建一个新的文章控制器实例
func NewArticleController(articleService *service.ArticleService) *ArticleController {
	return &ArticleController{
		ArticleService: articleService,
	}
}

// CreateArticleRequest 定义文章创建请求结构
// swagger:model CreateArticleRequest
type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateArticleRequest 定义文章更新请求结构
// swagger:model UpdateArticleRequest
type UpdateArticleRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Create godoc
// @Summary 创建文章
// @Description 以当前用户为作者创建文章，仅教师或管理员可用
// @Tags 文章
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body CreateArticleRequest true "文章内容"
// @Success 201 {object} util.Response{data=service.ArticleView} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "角色不允许"
// @Router /article/ [post]
func (c *ArticleController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.ArticleService.Create(claims, req.Title, req.Description)
	if err != nil {
		respondCreateError(ctx, err)
		return
	}

	util.Created(ctx, view)
}

// List godoc
// @Summary 文章列表
// @Description 返回全部文章，支持按标题搜索
// @Tags 文章
// @Produce  json
// @Security ApiKeyAuth
// @Param   search query string false "标题关键词"
// @Success 200 {object} util.Response{data=[]service.ArticleView} "成功"
// @Router /article/ [get]
func (c *ArticleController) List(ctx *gin.Context) {
	views, err := c.ArticleService.List(ctx.Query("search"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, views)
}

// Get godoc
// @Summary 获取文章
// @Tags 文章
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "文章公开ID"
// @Success 200 {object} util.Response{data=service.ArticleView} "成功"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /article/{id}/ [get]
func (c *ArticleController) Get(ctx *gin.Context) {
	view, err := c.ArticleService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Update godoc
// @Summary 更新文章
// @Description 全量更新，仅作者可操作
// @Tags 文章
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "文章公开ID"
// @Param   request body UpdateArticleRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.ArticleView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /article/{id}/ [put]
func (c *ArticleController) Update(ctx *gin.Context) {
	c.update(ctx, false)
}

// Patch godoc
// @Summary 局部更新文章
// @Tags 文章
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "文章公开ID"
// @Param   request body UpdateArticleRequest true "更新内容"
// @Success 200 {object} util.Response{data=service.ArticleView} "成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /article/{id}/ [patch]
func (c *ArticleController) Patch(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *ArticleController) update(ctx *gin.Context, partial bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateArticleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.ArticleService.Update(claims, ctx.Param("id"), service.ArticleUpdate{
		Title:       req.Title,
		Description: req.Description,
	}, partial)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// Delete godoc
// @Summary 删除文章
// @Description 级联删除文章下的测验、题目与作答，仅作者可操作
// @Tags 文章
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "文章公开ID"
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /article/{id}/ [delete]
func (c *ArticleController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ArticleService.Delete(ctx.Request.Context(), claims, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// UploadImage godoc
// @Summary 上传文章配图
// @Description 图片按最长边1024等比缩放，仅作者可操作
// @Tags 文章
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "文章公开ID"
// @Param   image formData file true "图片文件"
// @Success 200 {object} util.Response{data=service.ArticleView} "成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 401 {object} util.Response "非作者"
// @Failure 404 {object} util.Response "文章不存在"
// @Router /article/{id}/image/ [post]
func (c *ArticleController) UploadImage(ctx *gin.Context) {
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

	view, err := c.ArticleService.UploadImage(ctx.Request.Context(), claims, ctx.Param("id"), f)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// openImageForm 读取表单中的 image 字段并校验图片类型
func openImageForm(ctx *gin.Context) (io.ReadSeekCloser, bool) {
	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "缺少图片文件")
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, false
	}

	if _, err := util.ValidateMimeType(f, []string{util.MimeImage}); err != nil {
		f.Close()
		util.BadRequest(ctx, "仅支持图片文件")
		return nil, false
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		util.LogInternalError(ctx, err)
		return nil, false
	}

	return f, true
}
