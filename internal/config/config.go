// Package config 在啟動時讀取一次設定，之後以不可變的 Config 傳入各元件。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config 對應所有環境變數
type Config struct {
	ServerPort            string `mapstructure:"SERVER_PORT"`
	DatabaseURL           string `mapstructure:"DATABASE_URL"`
	RedisAddr             string `mapstructure:"REDIS_ADDR"`
	RedisPassword         string `mapstructure:"REDIS_PASSWORD"`
	RedisDB               int    `mapstructure:"REDIS_DB"`
	SecretKey             string `mapstructure:"SECRET_KEY"`
	Algorithm             string `mapstructure:"ALGORITHM"`
	AccessTokenTTLMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	BcryptCost            int    `mapstructure:"BCRYPT_COST"`
	CORSAllowedOrigins    string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RenewalHorizonDays    int    `mapstructure:"RENEWAL_HORIZON_DAYS"`
	DashboardCacheSeconds int    `mapstructure:"DASHBOARD_CACHE_SECONDS"`
}

var keys = []string{
	"SERVER_PORT",
	"DATABASE_URL",
	"REDIS_ADDR",
	"REDIS_PASSWORD",
	"REDIS_DB",
	"SECRET_KEY",
	"ALGORITHM",
	"ACCESS_TOKEN_EXPIRE_MINUTES",
	"BCRYPT_COST",
	"CORS_ALLOWED_ORIGINS",
	"RENEWAL_HORIZON_DAYS",
	"DASHBOARD_CACHE_SECONDS",
}

// dotenvLoad 讀取 .env，測試可覆寫
var dotenvLoad = func() error { return godotenv.Load() }

// Load 先載入可選的 .env，再由環境變數組出 Config 並驗證
func Load() (*Config, error) {
	if err := dotenvLoad(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RENEWAL_HORIZON_DAYS", 7)
	viper.SetDefault("DASHBOARD_CACHE_SECONDS", 30)
	viper.AutomaticEnv()

	for _, k := range keys {
		_ = viper.BindEnv(k)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"DATABASE_URL": c.DatabaseURL,
		"REDIS_ADDR":   c.RedisAddr,
		"SECRET_KEY":   c.SecretKey,
	}
	for _, k := range keys {
		if v, ok := required[k]; ok && strings.TrimSpace(v) == "" {
			return fmt.Errorf("環境變數 %s 未設定", k)
		}
	}

	switch c.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("無效的 ALGORITHM: %q", c.Algorithm)
	}
	if c.AccessTokenTTLMinutes <= 0 {
		return fmt.Errorf("無效的 ACCESS_TOKEN_EXPIRE_MINUTES: %d", c.AccessTokenTTLMinutes)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("無效的 BCRYPT_COST: %d", c.BcryptCost)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("無效的 REDIS_DB: %d", c.RedisDB)
	}
	if c.RenewalHorizonDays < 1 || c.RenewalHorizonDays > 30 {
		return fmt.Errorf("無效的 RENEWAL_HORIZON_DAYS: %d", c.RenewalHorizonDays)
	}
	if c.DashboardCacheSeconds < 0 {
		return fmt.Errorf("無效的 DASHBOARD_CACHE_SECONDS: %d", c.DashboardCacheSeconds)
	}
	return nil
}

// AccessTokenTTL 回傳 token 有效期間
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLMinutes) * time.Minute
}

// DashboardCacheTTL 為 0 表示停用快取
func (c Config) DashboardCacheTTL() time.Duration {
	return time.Duration(c.DashboardCacheSeconds) * time.Second
}

// AllowedOrigins 把逗號分隔的 CORS 來源拆成清單
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Addr 是 echo 監聽位址
func (c Config) Addr() string {
	return ":" + c.ServerPort
}
