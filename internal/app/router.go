package app

import (
	"corralsnake_backend/internal/config"
	"corralsnake_backend/internal/middleware"
	"corralsnake_backend/internal/model"
	"corralsnake_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	router.GET("/health", c.health.HealthCheck)
	router.POST("/user/", c.auth.Register)
	router.POST("/auth/token/", c.auth.Login)

	// 需要授权的路由
	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		// 当前用户
		auth.GET("/user/", c.user.GetMe)
		auth.PUT("/user/", c.user.UpdateMe)
		auth.PATCH("/user/", c.user.PatchMe)
		auth.DELETE("/user/", c.user.DeleteMe)
		auth.POST("/user/pfp/", c.user.UploadPfp)

		// 文章
		auth.GET("/article/", c.article.List)
		auth.GET("/article/search/", c.article.List)
		auth.GET("/article/:id/", c.article.Get)
		auth.PUT("/article/:id/", c.article.Update)
		auth.PATCH("/article/:id/", c.article.Patch)
		auth.DELETE("/article/:id/", c.article.Delete)
		auth.POST("/article/:id/image/", c.article.UploadImage)

		// 测验
		auth.GET("/quiz/id/:id/", c.quiz.Get)
		auth.PUT("/quiz/id/:id/", c.quiz.Update)
		auth.PATCH("/quiz/id/:id/", c.quiz.Patch)
		auth.DELETE("/quiz/id/:id/", c.quiz.Delete)

		// 题目
		auth.GET("/quiz/question/id/:id/", c.question.Get)
		auth.PUT("/quiz/question/id/:id/", c.question.Update)
		auth.PATCH("/quiz/question/id/:id/", c.question.Patch)
		auth.DELETE("/quiz/question/id/:id/", c.question.Delete)
		auth.POST("/quiz/question/id/:id/image/", c.question.UploadImage)

		// 候选答案
		auth.GET("/quiz/question/answer/id/:id/", c.questionAnswer.Get)
		auth.PUT("/quiz/question/answer/id/:id/", c.questionAnswer.Update)
		auth.PATCH("/quiz/question/answer/id/:id/", c.questionAnswer.Patch)
		auth.DELETE("/quiz/question/answer/id/:id/", c.questionAnswer.Delete)

		// 作答
		auth.POST("/quiz/question/answer/submit/", c.submittedAnswer.Create)
		auth.DELETE("/quiz/question/answer/submit/id/:id/", c.submittedAnswer.Delete)

		// 内容创建仅限教师角色（管理员豁免）
		teacher := auth.Group("/")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/article/", c.article.Create)
			teacher.POST("/quiz/", c.quiz.Create)
			teacher.POST("/quiz/question/", c.question.Create)
			teacher.POST("/quiz/question/answer/", c.questionAnswer.Create)
		}
	}
}
