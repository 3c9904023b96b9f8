package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel 日志级别
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// Logger 封装 zap logger，按天切换日志文件
type Logger struct {
	mu         sync.Mutex
	zap        *zap.Logger
	file       *os.File
	currentDay string
	logDir     string
	level      LogLevel
	now        func() time.Time
}

var globalLogger *Logger

// InitLogger 初始化全局日志系统
func InitLogger(logDir string, level LogLevel) error {
	l, err := NewLogger(logDir, level)
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// NewLogger 创建写入 logDir 的日志器
func NewLogger(logDir string, level LogLevel) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	l := &Logger{logDir: logDir, level: level, now: time.Now}
	if err := l.rotateIfNeeded(); err != nil {
		return nil, err
	}
	return l, nil
}

// rotateIfNeeded 跨天时切换到新的日志文件
func (l *Logger) rotateIfNeeded() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now().Format("2006-01-02")
	if l.currentDay == today && l.zap != nil {
		return nil
	}

	logPath := filepath.Join(l.logDir, fmt.Sprintf("support-charts-%s.log", today))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		l.file.Close()
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:     "time",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: bracketLevelEncoder,
		EncodeTime:  bracketTimeEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(file),
		levelToZapLevel(l.level),
	)

	l.zap = zap.New(core)
	l.file = file
	l.currentDay = today
	return nil
}

// bracketTimeEncoder 时间格式: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 级别格式: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// parseLogLevel 调试模式下记录 DEBUG 级别
func parseLogLevel(debug bool) LogLevel {
	if debug {
		return LogDebug
	}
	return LogInfo
}

// Log 写入一条日志，格式 [pathKey][message]，pathKey 为空时只输出 [message]
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	if err := l.rotateIfNeeded(); err != nil {
		return
	}

	formatted := "[" + message + "]"
	if pathKey != "" {
		formatted = "[" + pathKey + "]" + formatted
	}

	l.mu.Lock()
	z := l.zap
	l.mu.Unlock()

	switch level {
	case LogDebug:
		z.Debug(formatted)
	case LogInfo:
		z.Info(formatted)
	case LogWarn:
		z.Warn(formatted)
	case LogError:
		z.Error(formatted)
	}
}

// Sync 刷新缓冲区并关闭文件（应用退出时调用）
func (l *Logger) Sync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.zap != nil {
		_ = l.zap.Sync()
	}
	if l.file != nil {
		l.file.Close()
		l.file = nil
		l.zap = nil
		l.currentDay = ""
	}
}
