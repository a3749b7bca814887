package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	UploadDir   string
}

// LimitsConfig модель настроек ограничения частоты запросов на запись
type LimitsConfig struct {
	LoginPerMinute       int
	CreateOrderPerMinute int
	MessagePerMinute     int
	StaffWritePerMinute  int
}

// WatcherConfig модель настроек воркера контроля сроков заказов
type WatcherConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Limits  LimitsConfig
	Watcher WatcherConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN       = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		uploadDir = pflag.StringP("uploads", "u", args.UploadDir, "Directory to store order attachments.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
			UploadDir:   *uploadDir,
		},
		Limits:  DefaultLimits(),
		Watcher: DefaultWatcher(),
	}
}

// DefaultLimits - пороги частоты запросов на запись (в минуту на пользователя)
func DefaultLimits() LimitsConfig {
	return LimitsConfig{
		LoginPerMinute:       10,
		CreateOrderPerMinute: 20,
		MessagePerMinute:     30,
		StaffWritePerMinute:  60,
	}
}

// DefaultWatcher - настройки воркера контроля сроков по умолчанию
func DefaultWatcher() WatcherConfig {
	return WatcherConfig{
		BatchSize:    10,
		PollInterval: time.Minute,
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
			UploadDir:   "uploads",
		},
		Limits:  DefaultLimits(),
		Watcher: DefaultWatcher(),
	}
}
