package app

import (
	"context"
	"corralsnake_backend/internal/config"
	"corralsnake_backend/internal/controller"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/service"
	"corralsnake_backend/pkg/database"
	"corralsnake_backend/pkg/logger"
	"corralsnake_backend/pkg/monitoring"
	"corralsnake_backend/pkg/security"
	"corralsnake_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user            *repository.UserRepository
	article         *repository.ArticleRepository
	quiz            *repository.QuizRepository
	question        *repository.QuestionRepository
	questionAnswer  *repository.QuestionAnswerRepository
	submittedAnswer *repository.SubmittedAnswerRepository
}

type services struct {
	storage         *service.StorageService
	auth            *service.AuthService
	user            *service.UserService
	quiz            *service.QuizService
	article         *service.ArticleService
	question        *service.QuestionService
	questionAnswer  *service.QuestionAnswerService
	submittedAnswer *service.SubmittedAnswerService
}

type controllers struct {
	auth            *controller.AuthController
	user            *controller.UserController
	article         *controller.ArticleController
	quiz            *controller.QuizController
	question        *controller.QuestionController
	questionAnswer  *controller.QuestionAnswerController
	submittedAnswer *controller.SubmittedAnswerController
	health          *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:            repository.NewUserRepository(db),
		article:         repository.NewArticleRepository(db),
		quiz:            repository.NewQuizRepository(db),
		question:        repository.NewQuestionRepository(db),
		questionAnswer:  repository.NewQuestionAnswerRepository(db),
		submittedAnswer: repository.NewSubmittedAnswerRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.quiz = service.NewQuizService(repos.quiz, repos.article, s.storage, rdb)
	s.article = service.NewArticleService(repos.article, repos.quiz, s.storage, s.quiz)
	s.question = service.NewQuestionService(repos.question, repos.quiz, s.storage, s.quiz)
	s.questionAnswer = service.NewQuestionAnswerService(repos.questionAnswer, repos.question, s.quiz)
	s.submittedAnswer = service.NewSubmittedAnswerService(repos.submittedAnswer, repos.questionAnswer, repos.question)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:            controller.NewAuthController(s.auth),
		user:            controller.NewUserController(s.user, s.auth),
		article:         controller.NewArticleController(s.article),
		quiz:            controller.NewQuizController(s.quiz),
		question:        controller.NewQuestionController(s.question),
		questionAnswer:  controller.NewQuestionAnswerController(s.questionAnswer),
		submittedAnswer: controller.NewSubmittedAnswerController(s.submittedAnswer),
		health:          controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("corralsnake", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
