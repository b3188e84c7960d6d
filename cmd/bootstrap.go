package cmd

import (
	"fmt"

	"evdealer/config"
	"evdealer/database"
	"evdealer/logger"

	"gorm.io/gorm"
)

// bootstrap 載入設定、初始化日誌並連線資料庫，三個子命令共用
func bootstrap() (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger.Init(cfg.Log)

	db, err := database.InitDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, db, nil
}
