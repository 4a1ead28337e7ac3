package controller

import (
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/service"
	"corralsnake_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthController 处理注册与登录请求
type AuthController struct {
	AuthService *service.AuthService
}

// NewAuthController 创建一个新的认证控制器实例
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// RegisterRequest 定义用户注册请求结构
// swagger:model RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=Teacher Student Other"`
}

// LoginRequest 定义登录请求结构
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 用户注册
// @Description 创建新用户，密码需通过强度校验
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   request body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=model.User} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /user/ [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      model.UserRole(req.Role),
	}

	if err := c.AuthService.Register(user, req.Password); err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, user)
}

// Login godoc
// @Summary 用户登录
// @Description 校验邮箱与密码，返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   request body LoginRequest true "登录信息"
// @Success 200 {object} util.Response "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "邮箱或密码错误"
// @Router /auth/token/ [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}
