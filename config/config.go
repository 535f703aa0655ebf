package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	MaxUploadMB       int64  `mapstructure:"MAX_UPLOAD_MB"`

	// Storage engine: memory, file, mongo or redis.
	StorageEngine        string `mapstructure:"STORAGE_ENGINE"`
	StorageCorruptPolicy string `mapstructure:"STORAGE_CORRUPT_POLICY"`
	DataDir              string `mapstructure:"DATA_DIR"`
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	MongoDatabase        string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`

	// Gemini.
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiVerifyModel string        `mapstructure:"GEMINI_VERIFY_MODEL"`
	GeminiAdviceModel string        `mapstructure:"GEMINI_ADVICE_MODEL"`
	AITimeout         time.Duration `mapstructure:"AI_TIMEOUT"`
	ChatTTL           time.Duration `mapstructure:"CHAT_TTL"`
}

var AppConfig Config

var defaults = map[string]any{
	"APP_PORT":               "8080",
	"ENV":                    "development",
	"JWT_SECRET":             "",
	"LOG_LEVEL":              "info",
	"MAX_REQUESTS_PER_MIN":   100,
	"MAX_UPLOAD_MB":          10,
	"STORAGE_ENGINE":         "file",
	"STORAGE_CORRUPT_POLICY": "error",
	"DATA_DIR":               "./data",
	"DATABASE_URL":           "mongodb://localhost:27017",
	"MONGO_DATABASE":         "statutesync",
	"REDIS_ADDR":             "localhost:6379",
	"REDIS_PASSWORD":         "",
	"REDIS_STORE_DB":         0,
	"REDIS_CHAT_DB":          1,
	"GEMINI_API_KEY":         "",
	"GEMINI_VERIFY_MODEL":    "gemini-1.5-flash",
	"GEMINI_ADVICE_MODEL":    "gemini-1.5-pro",
	"AI_TIMEOUT":             "60s",
	"CHAT_TTL":               "24h",
}

// Load reads config.yaml (from "." or "./config") and the environment into a Config.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.StorageEngine {
	case "memory", "file", "mongo", "redis":
	default:
		return fmt.Errorf("unsupported STORAGE_ENGINE %q", c.StorageEngine)
	}
	switch c.StorageCorruptPolicy {
	case "error", "reset":
	default:
		return fmt.Errorf("unsupported STORAGE_CORRUPT_POLICY %q", c.StorageCorruptPolicy)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}
	return nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
