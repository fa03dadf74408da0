package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env           string        `mapstructure:"ENV"`
	Port          string        `mapstructure:"PORT"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed   string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	BaseURL       string        `mapstructure:"BASE_URL"`
	AdminKey      string        `mapstructure:"ADMIN_KEY"`
	StoreBackend  string        `mapstructure:"STORE_BACKEND"`
	DatabaseURL   string        `mapstructure:"DATABASE_URL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	LineSecret    string        `mapstructure:"LINE_CHANNEL_SECRET"`
	LineToken     string        `mapstructure:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineRecipient string        `mapstructure:"LINE_RECIPIENT_ID"`
	LineAPIBase   string        `mapstructure:"LINE_API_BASE_URL"`
	NotifyTimeout time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
	ContactPhone  string        `mapstructure:"CONTACT_PHONE"`

	// SMTP credentials are accepted for parity with the deployment env,
	// mail delivery itself is not implemented.
	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("BASE_URL", "http://localhost:3000")
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LINE_API_BASE_URL", "https://api.line.me")
	v.SetDefault("NOTIFY_TIMEOUT", "10s")
	v.SetDefault("CONTACT_PHONE", "+15551234567")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
