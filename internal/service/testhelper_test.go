package service

import (
	"corralsnake_backend/internal/config"
	"corralsnake_backend/internal/model"
	"corralsnake_backend/internal/repository"
	"corralsnake_backend/internal/util"
	"corralsnake_backend/pkg/database"
	"corralsnake_backend/pkg/logger"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// 测试环境：内存sqlite + 本地临时目录存储，不接Redis
type testEnv struct {
	db *gorm.DB

	auth            *AuthService
	user            *UserService
	article         *ArticleService
	quiz            *QuizService
	question        *QuestionService
	questionAnswer  *QuestionAnswerService
	submittedAnswer *SubmittedAnswerService

	submittedRepo *repository.SubmittedAnswerRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	// 内存库绑定单连接，避免连接池拿到空库
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-that-is-long-enough-1234"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Storage.Type = util.StorageLocal
	cfg.Storage.LocalPath = t.TempDir()

	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewQuestionAnswerRepository(db)
	submittedRepo := repository.NewSubmittedAnswerRepository(db)

	storage := NewStorageService(cfg)
	quizSvc := NewQuizService(quizRepo, articleRepo, storage, nil)

	return &testEnv{
		db:              db,
		auth:            NewAuthService(userRepo, cfg),
		user:            NewUserService(userRepo, storage),
		article:         NewArticleService(articleRepo, quizRepo, storage, quizSvc),
		quiz:            quizSvc,
		question:        NewQuestionService(questionRepo, quizRepo, storage, quizSvc),
		questionAnswer:  NewQuestionAnswerService(answerRepo, questionRepo, quizSvc),
		submittedAnswer: NewSubmittedAnswerService(submittedRepo, answerRepo, questionRepo),
		submittedRepo:   submittedRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, username string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Email:    username + "@example.com",
		Username: username,
		Role:     role,
	}
	if err := e.auth.Register(user, "corral2024"); err != nil {
		t.Fatalf("注册用户 %s 失败: %v", username, err)
	}
	return user
}

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{
		UserID:  user.ID,
		Role:    user.Role,
		IsStaff: user.IsStaff,
		Email:   user.Email,
	}
}

func (e *testEnv) count(t *testing.T, value interface{}) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	return n
}

func (e *testEnv) countChoiceLinks(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := e.db.Raw("SELECT COUNT(*) FROM submitted_answer_choices").Scan(&n).Error; err != nil {
		t.Fatalf("统计关联表失败: %v", err)
	}
	return n
}
