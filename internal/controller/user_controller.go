package controller

import (
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"
	"io"

	"github.com/gin-gonic/gin"
)

// UserController 处理当前用户相关的HTTP请求
type UserController struct {
	UserService *service.UserService
	AuthService *service.AuthService
}

// NewUserController 创建一个新的用户控制器实例
func NewUserController(userService *service.UserService, authService *service.AuthService) *UserController {
	return &UserController{
		UserService: userService,
		AuthService: authService,
	}
}

// UpdateUserRequest 定义用户更新请求结构
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// GetMe godoc
// @Summary 获取当前用户
// @Description 根据令牌返回当前登录用户信息
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /user/ [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}

// UpdateMe godoc
// @Summary 更新当前用户
// @Description 全量更新当前用户信息，缺省字段视为清空
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body UpdateUserRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /user/ [put]
func (c *UserController) UpdateMe(ctx *gin.Context) {
	c.update(ctx, false)
}

// PatchMe godoc
// @Summary 局部更新当前用户
// @Description 只更新请求体中出现的字段
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   request body UpdateUserRequest true "更新内容"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /user/ [patch]
func (c *UserController) PatchMe(ctx *gin.Context) {
	c.update(ctx, true)
}

func (c *UserController) update(ctx *gin.Context, partial bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(claims.UserID, service.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}, partial)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// DeleteMe godoc
// @Summary 删除当前用户
// @Description 删除账号并清理非默认头像文件
// @Tags 用户
// @Produce  json
// @Security ApiKeyAuth
// @Success 204 "删除成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /user/ [delete]
func (c *UserController) DeleteMe(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.Delete(ctx.Request.Context(), claims.UserID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.NoContent(ctx)
}

// UploadPfp godoc
// @Summary 上传头像
// @Description 上传图片文件，统一裁剪为256x256
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   pfp formData file true "头像文件"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 401 {object} util.Response "未授权"
// @Router /user/pfp/ [post]
func (c *UserController) UploadPfp(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("pfp")
	if err != nil {
		util.BadRequest(ctx, "缺少头像文件")
		return
	}

	f, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer f.Close()

	if _, err := util.ValidateMimeType(f, []string{util.MimeImage}); err != nil {
		util.BadRequest(ctx, "仅支持图片文件")
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	user, err := c.UserService.UploadPfp(ctx.Request.Context(), claims.UserID, f)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, user)
}
