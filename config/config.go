package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func init() {
	// Missing .env is fine, the environment may be set by the supervisor.
	_ = godotenv.Load()
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("CLUBSITE_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CLUBSITE_DEBUG") == "true"
}

func GetListen() string {
	listen := os.Getenv("CLUBSITE_LISTEN")
	if listen == "" {
		listen = ":3000"
	}
	return listen
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CLUBSITE_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CLUBSITE_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "logs"
	}
	return logFolderPath
}

func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return secret
}

// GetTokenLifetime is how long an issued login token stays valid.
func GetTokenLifetime() time.Duration {
	return time.Hour
}

func GetCacheEnabled() bool {
	v := os.Getenv("CACHE_ENABLED")
	if v == "" {
		return true
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return enabled
}

func GetCacheTTL() time.Duration {
	sec, err := strconv.Atoi(os.Getenv("CACHE_TTL_SEC"))
	if err != nil || sec < 0 {
		sec = 30
	}
	return time.Duration(sec) * time.Second
}

// GetRedisAddr returns the external redis address. Empty means the cache uses
// the in-process memory store.
func GetRedisAddr() string {
	return os.Getenv("REDIS_ADDR")
}

func GetUploadFolder() string {
	dir := os.Getenv("CLUBSITE_UPLOAD_FOLDER")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func GetRecaptchaSecret() string {
	return os.Getenv("RECAPTCHA_SECRET_KEY")
}
