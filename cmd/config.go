package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"catering/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr        string
	ScheduleCacheTTL time.Duration

	KafkaHost              string
	KafkaOrderChangedTopic string

	LogLevel string

	LocalZoneCity              string
	Timezone                   string
	MaterialReturnPeriod       time.Duration
	MaterialReturnScanSchedule string
	OpeningScheduleFile        string
}

// LoadConfig reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "catering")
	v.SetDefault("DB_PASSWORD", "catering")
	v.SetDefault("DB_NAME", "catering")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("SCHEDULE_CACHE_TTL", "10m")
	v.SetDefault("KAFKA_HOST", "")
	v.SetDefault("KAFKA_ORDER_CHANGED_TOPIC", "order.status.changed")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOCAL_ZONE_CITY", "Bordeaux")
	v.SetDefault("TIMEZONE", "Europe/Paris")
	v.SetDefault("MATERIAL_RETURN_PERIOD", "240h")
	v.SetDefault("MATERIAL_RETURN_SCAN_SCHEDULE", "@hourly")
	v.SetDefault("OPENING_SCHEDULE_FILE", "configs/opening_schedule.yaml")

	cacheTTL, err := time.ParseDuration(v.GetString("SCHEDULE_CACHE_TTL"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SCHEDULE_CACHE_TTL: %w", err)
	}
	returnPeriod, err := time.ParseDuration(v.GetString("MATERIAL_RETURN_PERIOD"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MATERIAL_RETURN_PERIOD: %w", err)
	}

	return Config{
		HTTPPort:                   v.GetString("HTTP_PORT"),
		DBHost:                     v.GetString("DB_HOST"),
		DBPort:                     v.GetString("DB_PORT"),
		DBUser:                     v.GetString("DB_USER"),
		DBPassword:                 v.GetString("DB_PASSWORD"),
		DBName:                     v.GetString("DB_NAME"),
		DBSslMode:                  v.GetString("DB_SSLMODE"),
		RedisAddr:                  v.GetString("REDIS_ADDR"),
		ScheduleCacheTTL:           cacheTTL,
		KafkaHost:                  v.GetString("KAFKA_HOST"),
		KafkaOrderChangedTopic:     v.GetString("KAFKA_ORDER_CHANGED_TOPIC"),
		LogLevel:                   v.GetString("LOG_LEVEL"),
		LocalZoneCity:              v.GetString("LOCAL_ZONE_CITY"),
		Timezone:                   v.GetString("TIMEZONE"),
		MaterialReturnPeriod:       returnPeriod,
		MaterialReturnScanSchedule: v.GetString("MATERIAL_RETURN_SCAN_SCHEDULE"),
		OpeningScheduleFile:        v.GetString("OPENING_SCHEDULE_FILE"),
	}, nil
}

// Database returns the postgres connection settings.
func (c Config) Database() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:            c.DBHost,
		Port:            c.DBPort,
		User:            c.DBUser,
		Password:        c.DBPassword,
		Name:            c.DBName,
		SSLMode:         c.DBSslMode,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}
