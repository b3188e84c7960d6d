package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config 整個服務的設定，全部來自環境變數（可由 .env 提供）
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`

	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	Log      LogConfig      `envconfig:"LOG"`

	AESKey    string        `envconfig:"AES_KEY" required:"true"`
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	// 送出預約表單時的模擬延遲
	BookingDelay     time.Duration `envconfig:"BOOKING_DELAY" default:"1500ms"`
	CatalogPageLimit int           `envconfig:"CATALOG_PAGE_LIMIT" default:"12"`

	PromotionSweepSpec string `envconfig:"PROMOTION_SWEEP_SPEC" default:"0 * * * *"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@evdealer.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin12345"`
}

type DatabaseConfig struct {
	DSN           string        `split_words:"true" default:"evdealer:evdealer1234@tcp(127.0.0.1:3306)/evdealer?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxRetries    int           `split_words:"true" default:"5"`
	RetryInterval time.Duration `split_words:"true" default:"5s"`
	MaxIdleConns  int           `split_words:"true" default:"10"`
	MaxOpenConns  int           `split_words:"true" default:"100"`
}

// RedisConfig URL 為空時使用記憶體儲存
type RedisConfig struct {
	URL          string        `split_words:"true"`
	DialTimeout  time.Duration `split_words:"true" default:"5s"`
	ReadTimeout  time.Duration `split_words:"true" default:"3s"`
	WriteTimeout time.Duration `split_words:"true" default:"3s"`
}

type LogConfig struct {
	Level      string `split_words:"true" default:"info"`
	Format     string `split_words:"true" default:"text"`
	File       string `split_words:"true"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB" default:"50"`
	MaxBackups int    `split_words:"true" default:"5"`
	MaxAgeDays int    `split_words:"true" default:"28"`
}

// IsProduction 是否為正式環境
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load 載入 .env 後解析環境變數
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.AESKey) != 32 {
		return fmt.Errorf("AES_KEY must be 32 bytes long, got %d bytes", len(c.AESKey))
	}
	if c.CatalogPageLimit <= 0 {
		return fmt.Errorf("CATALOG_PAGE_LIMIT must be positive, got %d", c.CatalogPageLimit)
	}
	if c.BookingDelay < 0 {
		return fmt.Errorf("BOOKING_DELAY must not be negative")
	}
	return nil
}
