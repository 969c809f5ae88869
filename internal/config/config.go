package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/attendance"
	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Redis      RedisConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// RedisConfig is optional; an empty Addr selects the in-memory cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AttendanceConfig holds the engine's static rules.
type AttendanceConfig struct {
	Timezone        string
	Location        *time.Location
	Shifts          attendance.ShiftConfig
	DedupWindow     time.Duration
	SettingCacheTTL time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Redis configuration
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	config.Redis = RedisConfig{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       redisDB,
	}

	// Attendance configuration
	attendanceCfg, err := loadAttendance()
	if err != nil {
		return nil, err
	}
	config.Attendance = attendanceCfg

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadAttendance() (AttendanceConfig, error) {
	cfg := AttendanceConfig{
		Timezone: getEnv("APP_TIMEZONE", "Africa/Algiers"),
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	if cfg.Shifts.Morning, err = loadShiftWindow("MORNING", "08:00", "12:00", "08:30", "12:00"); err != nil {
		return cfg, err
	}
	if cfg.Shifts.Evening, err = loadShiftWindow("EVENING", "13:00", "17:00", "13:30", "17:00"); err != nil {
		return cfg, err
	}

	graceMinutes, err := strconv.Atoi(getEnv("SHIFT_GRACE_PERIOD_MINUTES", "15"))
	if err != nil {
		return cfg, fmt.Errorf("invalid SHIFT_GRACE_PERIOD_MINUTES: %w", err)
	}
	cfg.Shifts.GracePeriod = time.Duration(graceMinutes) * time.Minute

	if cfg.DedupWindow, err = time.ParseDuration(getEnv("ATTENDANCE_DEDUP_WINDOW", "60s")); err != nil {
		return cfg, fmt.Errorf("invalid ATTENDANCE_DEDUP_WINDOW: %w", err)
	}
	if cfg.SettingCacheTTL, err = time.ParseDuration(getEnv("COMPANY_SETTING_CACHE_TTL", "1h")); err != nil {
		return cfg, fmt.Errorf("invalid COMPANY_SETTING_CACHE_TTL: %w", err)
	}

	return cfg, nil
}

func loadShiftWindow(period, start, end, lateAfter, earlyLeaveBefore string) (attendance.ShiftWindow, error) {
	var w attendance.ShiftWindow
	fields := []struct {
		key      string
		fallback string
		target   *attendance.TimeOfDay
	}{
		{"SHIFT_" + period + "_START", start, &w.Start},
		{"SHIFT_" + period + "_END", end, &w.End},
		{"SHIFT_" + period + "_LATE_AFTER", lateAfter, &w.LateAfter},
		{"SHIFT_" + period + "_EARLY_LEAVE_BEFORE", earlyLeaveBefore, &w.EarlyLeaveBefore},
	}

	for _, f := range fields {
		t, err := attendance.ParseTimeOfDay(getEnv(f.key, f.fallback))
		if err != nil {
			return w, fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.target = t
	}
	return w, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if err := c.Attendance.Shifts.Validate(); err != nil {
		return fmt.Errorf("invalid shift configuration: %w", err)
	}
	if c.Attendance.DedupWindow <= 0 {
		return fmt.Errorf("ATTENDANCE_DEDUP_WINDOW must be positive")
	}
	if c.Attendance.SettingCacheTTL <= 0 {
		return fmt.Errorf("COMPANY_SETTING_CACHE_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
