package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

const envPrefix = "FOODGRAM_"

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	JWTSecret       string
	FontPath        string
	Locale          language.Tag
	LogLevel        zapcore.Level
	CORSOrigins     []string
	ExportPerMinute int
	ShutdownTimeout time.Duration
}

// Load reads the optional env files (".env" when none given) and then the
// FOODGRAM_* environment variables. Variables already set in the environment
// win over the files.
func Load(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FontPath:    getEnv("FONT_PATH", "/app/fonts/JetBrainsMono-Regular.ttf"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	var errs []error

	if cfg.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("%sDATABASE_URL is empty", envPrefix))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("%sJWT_SECRET is empty", envPrefix))
	}

	locale, err := language.Parse(getEnv("LOCALE", "ru"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%sLOCALE: %w", envPrefix, err))
	}
	cfg.Locale = locale

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err))
	}
	cfg.LogLevel = level

	perMinute, err := strconv.Atoi(getEnv("EXPORT_PER_MINUTE", "10"))
	if err != nil || perMinute <= 0 {
		errs = append(errs, fmt.Errorf("%sEXPORT_PER_MINUTE must be a positive integer", envPrefix))
	}
	cfg.ExportPerMinute = perMinute

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		errs = append(errs, fmt.Errorf("%sSHUTDOWN_TIMEOUT: %w", envPrefix, err))
	}
	cfg.ShutdownTimeout = timeout

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(name, fallback string) string {
	if v, ok := os.LookupEnv(envPrefix + name); ok && v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// DatabaseURL loads the env files like Load but reads only the database
// connection string, for tools that do not serve HTTP.
func DatabaseURL(envFiles ...string) (string, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return "", err
	}

	url := getEnv("DATABASE_URL", "")
	if url == "" {
		return "", fmt.Errorf("%sDATABASE_URL is empty", envPrefix)
	}
	return url, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("godotenv.Load[%s]: %w", f, err)
		}
	}
	return nil
}
