package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Env          string
	LogLevel     string
	Server       Server
	Database     Database
	Redis        Redis
	Auth         Auth
	Attempts     Attempts
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds a key/value connection string for the postgres driver.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	JWTSecret            string
	TokenTTL             time.Duration
	SessionCheckInterval time.Duration
}

type Attempts struct {
	TickInterval time.Duration
}

func NewConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("SESSION_CHECK_INTERVAL", "60s")
	v.SetDefault("ATTEMPT_TICK_INTERVAL", "1s")

	var config Config

	config.Env = v.GetString("APP_ENV")
	config.LogLevel = v.GetString("LOG_LEVEL")
	config.Server.Port = v.GetString("SERVER_PORT")
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")
	config.Database.SSLMode = v.GetString("DATABASE_SSLMODE")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.Password = v.GetString("REDIS_PASSWORD")
	config.Redis.DB = v.GetInt("REDIS_DB")

	config.Auth.JWTSecret = v.GetString("JWT_SECRET")
	config.Auth.TokenTTL = v.GetDuration("JWT_TTL")
	config.Auth.SessionCheckInterval = v.GetDuration("SESSION_CHECK_INTERVAL")
	config.Attempts.TickInterval = v.GetDuration("ATTEMPT_TICK_INTERVAL")

	config.GeminiApiKey = v.GetString("GEMINI_API_KEY")

	if config.Auth.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	log.Info().
		Str("env", config.Env).
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("redisAddr", config.Redis.Addr).
		Dur("sessionCheckInterval", config.Auth.SessionCheckInterval).
		Dur("attemptTickInterval", config.Attempts.TickInterval).
		Bool("geminiEnabled", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}
