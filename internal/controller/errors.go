package controller

import (
	"corralsnake_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将服务层错误映射到响应状态
// 归属失败为401，与404区分：资源存在与否不对错误归属方隐藏
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrNotOwner):
		util.Unauthorized(ctx)
	case errors.Is(err, util.ErrValidation),
		errors.Is(err, util.ErrChoiceMismatch),
		errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrUsernameTaken):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// respondCreateError 创建时父引用不存在按校验失败处理
func respondCreateError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrNotFound) {
		util.BadRequest(ctx, "referenced resource does not exist")
		return
	}
	respondServiceError(ctx, err)
}
