package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu       sync.Mutex
	instance *zap.SugaredLogger = nil
)

// Initialize - инициализирует синглтон логгера с нужным уровнем логирования
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	instance = logger.Sugar()
	return nil
}

// Get - метод получения объекта логгера из синглтона
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - сброс буферов логгера
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug — обертка над методом логирования уровня Debug
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info — обертка над методом логирования уровня Info
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn — обертка над методом логирования уровня Warn
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error — обертка над методом логирования уровня Error
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic — обертка над методом логирования уровня Panic
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
