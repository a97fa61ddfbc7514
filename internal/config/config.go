package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Auth    AuthConfig    `mapstructure:"auth"`
	AI      AIConfig      `mapstructure:"ai"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	TokenSecret string        `mapstructure:"token_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
}

type AIConfig struct {
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`
}

type SMTPConfig struct {
	Server   string `mapstructure:"server"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Configured reports whether outbound mail can be sent at all.
func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Auth.TokenSecret = EnsureTokenSecret(cfg.Auth.TokenSecret)

	return &cfg, nil
}

// EnsureTokenSecret returns secret unchanged when set. When empty it
// generates a random per-process secret, which makes every issued token
// unverifiable after a restart. Acceptable for development only.
func EnsureTokenSecret(secret string) string {
	if secret != "" {
		return secret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken anyway
		panic(fmt.Sprintf("failed to generate token secret: %v", err))
	}

	log.Warn().Msg("JWT_SECRET not set, using a generated secret for this process; sessions will not survive a restart")
	return base64.RawURLEncoding.EncodeToString(buf)
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// Mongo
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "snipx")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// Auth
	v.SetDefault("auth.token_ttl", "24h")

	// AI
	v.SetDefault("ai.openai_model", "gpt-3.5-turbo")
	v.SetDefault("ai.gemini_model", "gemini-1.5-flash")

	// SMTP
	v.SetDefault("smtp.server", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func bindEnvVars(v *viper.Viper) {
	v.BindEnv("server.port", "SERVER_PORT")

	// Mongo
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DATABASE")

	// Redis
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Auth
	v.BindEnv("auth.token_secret", "JWT_SECRET")

	// AI provider keys; presence selects the provider
	v.BindEnv("ai.openai_api_key", "OPENAI_API_KEY")
	v.BindEnv("ai.gemini_api_key", "GEMINI_API_KEY")

	// SMTP
	v.BindEnv("smtp.server", "SMTP_SERVER")
	v.BindEnv("smtp.port", "SMTP_PORT")
	v.BindEnv("smtp.username", "SMTP_USERNAME")
	v.BindEnv("smtp.password", "SMTP_PASSWORD")
}
