package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"workcurb/internal/shared/connection"
)

type Config struct {
	Server   ServerConfig
	Database connection.PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	SMTP     SMTPConfig
	Security SecurityConfig
	Rating   RatingConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	RedactErrors bool
	AutoMigrate  bool
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker        string
	ConsumerGroup string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SecurityConfig struct {
	// PlatformJWTSecret verifies bearer tokens issued by the hosting
	// platform. Empty disables token checks and role enforcement.
	PlatformJWTSecret string
	LoginRatePerSec   float64
	LoginBurst        int
}

type RatingConfig struct {
	ScaleMax float64
}

func (c Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Load reads .env (when present) and the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		zap.L().Named("config").Debug(".env not found, using environment only", zap.Error(err))
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Env:          v.GetString("APP_ENV"),
			RedactErrors: v.GetBool("APP_REDACT_ERRORS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		},
		Database: connection.PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr: v.GetString("REDIS_ADDR"),
		},
		Kafka: KafkaConfig{
			Broker:        v.GetString("KAFKA_BROKER"),
			ConsumerGroup: v.GetString("KAFKA_CONSUMER_GROUP"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		Security: SecurityConfig{
			PlatformJWTSecret: v.GetString("PLATFORM_JWT_SECRET"),
			LoginRatePerSec:   v.GetFloat64("LOGIN_RATE_PER_SEC"),
			LoginBurst:        v.GetInt("LOGIN_BURST"),
		},
		Rating: RatingConfig{
			ScaleMax: v.GetFloat64("RATING_SCALE_MAX"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_REDACT_ERRORS", false)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "workcurb-notifications")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM", "no-reply@workcurb.local")
	v.SetDefault("LOGIN_RATE_PER_SEC", 0.2)
	v.SetDefault("LOGIN_BURST", 5)
	v.SetDefault("RATING_SCALE_MAX", 10)
}
