package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerType represents different logger configurations
type LoggerType string

const (
	// FileLogger writes logs to file only
	FileLogger LoggerType = "file"
	// ConsoleLogger writes logs to console only
	ConsoleLogger LoggerType = "console"
	// HybridLogger writes logs to both file and console
	HybridLogger LoggerType = "hybrid"
)

// ZapLogger is our application logger that supports console and file outputs
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// NewZapLogger creates a logger of the given type at the given level.
func NewZapLogger(loggerType LoggerType, level, filePath string) (*ZapLogger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.MessageKey = "message"

	var cores []zapcore.Core
	var file *os.File

	if loggerType == ConsoleLogger || loggerType == HybridLogger {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(os.Stdout),
			zapLevel,
		))
	}

	if loggerType == FileLogger || loggerType == HybridLogger {
		if filePath == "" {
			return nil, fmt.Errorf("file logger requires a file path")
		}
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(file),
			zapLevel,
		))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("unknown logger type: %s", loggerType)
	}

	zapLog := zap.New(zapcore.NewTee(cores...), zap.AddCaller())

	return &ZapLogger{
		Logger:   zapLog,
		sugar:    zapLog.Sugar(),
		filePath: filePath,
		file:     file,
	}, nil
}

// InitZapLoggerFromConfig initializes the logger directly from app config.
func InitZapLoggerFromConfig(configs *models.Config) (*ZapLogger, error) {
	loggerType := LoggerType(configs.Logger.Type)
	if loggerType == "" {
		loggerType = ConsoleLogger
	}
	return NewZapLogger(loggerType, configs.Logger.Level, configs.Logger.FilePath)
}

// Sugar returns the sugared logger for printf-style call sites.
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// GetFilePath returns the current log file path
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// Close flushes buffered entries and closes the log file if one is open.
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}
