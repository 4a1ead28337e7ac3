// @title CorralSnake 后端 API
// @version 1.0
// @description 文章与测验学习平台的后端服务器。

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"corralsnake_backend/internal/app"
	"corralsnake_backend/internal/config"
	"corralsnake_backend/pkg/configwatcher"
	"corralsnake_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// 迁移在应用初始化时完成，完成后直接退出
	if *migrateOnly {
		log.Println("数据库迁移完成，退出程序")
		return
	}

	// 热加载配置 中间件持有同一份配置指针，JWT等字段即时生效
	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		if updated, ok := newCfg.(*config.Config); ok {
			cfg.JWT = updated.JWT
			cfg.CORS = updated.CORS
			log.Println("配置已重新加载")
		}
	})

	application.Run()
}
