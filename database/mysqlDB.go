package database

import (
	"fmt"
	"time"

	"evdealer/config"
	"evdealer/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB 連線 MySQL（含重試），設定連線池後存入 DB
func InitDB(cfg config.DatabaseConfig, production bool) (*gorm.DB, error) {
	// 根據環境設置日誌級別
	logLevel := logger.Info
	if production {
		logLevel = logger.Warn
	}

	var (
		db  *gorm.DB
		err error
	)

	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(cfg.RetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// 連線池配置
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var dbName string
	if err := db.Raw("SELECT DATABASE()").Scan(&dbName).Error; err != nil {
		return nil, fmt.Errorf("failed to get current database: %w", err)
	}
	log.Printf("Connected to database: %s", dbName)

	DB = db
	return db, nil
}

// Migrate 建立或更新所有資料表
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Customer{},
		&models.Payment{},
		&models.Order{},
		&models.Dealer{},
		&models.Promotion{},
		&models.Staff{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migration completed")
	return nil
}
