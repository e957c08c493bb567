package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort       string `mapstructure:"APP_PORT"`
	Env           string `mapstructure:"ENV"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	AdminPhone    string `mapstructure:"ADMIN_PHONE"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	StaticDir     string `mapstructure:"STATIC_DIR"`

	// Rate limiting: maximum requests per IP over a 15-minute window.
	MaxRequestsPer15Min int `mapstructure:"MAX_REQUESTS_PER_15MIN"`

	// Idle timeout for HTTP connections, in seconds.
	IdleTimeoutSec int `mapstructure:"IDLE_TIMEOUT_SEC"`

	// Storage backend: "memory" (volatile) or "mongo" (durable).
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	// OTP backend: "memory" or "redis".
	OTPBackend    string `mapstructure:"OTP_BACKEND"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "3001")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "secret_key_very_secure_2025")
	viper.SetDefault("ADMIN_PHONE", "+79991234567")
	viper.SetDefault("ADMIN_PASSWORD", "Admin$ecret2025")
	viper.SetDefault("STATIC_DIR", "public")
	viper.SetDefault("MAX_REQUESTS_PER_15MIN", 500)
	viper.SetDefault("IDLE_TIMEOUT_SEC", 60)
	viper.SetDefault("STORAGE_BACKEND", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("OTP_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_OTP_DB", 2)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
