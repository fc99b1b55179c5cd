package main

import (
	"github.com/GhaziTrueAlpha/Surveys/internal/config"
	"github.com/GhaziTrueAlpha/Surveys/internal/database"
	"github.com/GhaziTrueAlpha/Surveys/internal/logger"
	"github.com/GhaziTrueAlpha/Surveys/internal/router"
	"github.com/GhaziTrueAlpha/Surveys/internal/scheduler"
	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化日志
	logger.Setup(cfg.Log)
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Init(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// 种子写入管理员账号
	if err := database.SeedAdmin(db, cfg.Admin); err != nil {
		logger.Fatal("Failed to seed admin account: %v", err)
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化路由
	r := router.Setup(db, cfg)

	// 启动定时任务
	manager := scheduler.Start(db, cfg)
	defer manager.Stop()

	// 启动服务器
	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
