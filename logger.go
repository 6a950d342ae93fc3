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

// ============================================================================
// 日誌級別定義
// ============================================================================

// LogLevel 日誌級別
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// ============================================================================
// Logger 結構
// ============================================================================

// Logger 封裝 zap logger，支援按天自動輪轉
type Logger struct {
	mu         sync.Mutex  // 保護 zap 實例與 currentDay 的並發存取
	zap        *zap.Logger // zap logger 實例
	currentDay string      // 當前日誌檔對應的日期 (YYYY-MM-DD)
	logDir     string      // 日誌目錄路徑
	level      LogLevel    // 最低日誌級別
}

var globalLogger *Logger

// InitLogger 初始化全域日誌系統
func InitLogger(logDir string, level LogLevel) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	globalLogger = &Logger{
		logDir: logDir,
		level:  level,
	}

	// 立即切到今天的日誌檔
	return globalLogger.rotateIfNeeded()
}

// ============================================================================
// 日誌輪轉
// ============================================================================

// rotateIfNeeded 檢查是否需要切換到新的日誌檔（按天輪轉）
func (l *Logger) rotateIfNeeded() error {
	today := time.Now().Format(dateKeyLayout)

	// 快速路徑：同一天而且 logger 已存在，不需輪轉
	if l.currentDay == today && l.zap != nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// 再檢查一次（可能其他 goroutine 已完成輪轉）
	if l.currentDay == today && l.zap != nil {
		return nil
	}

	// 關閉舊 logger（刷新緩衝區）
	if l.zap != nil {
		l.zap.Sync()
	}

	logPath := filepath.Join(l.logDir, fmt.Sprintf("invest-tracker-%s.log", today))
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// 自定義格式：[2006-01-02 15:04:05][DEBUG]
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
	l.currentDay = today

	return nil
}

// ============================================================================
// 編碼器
// ============================================================================

// bracketTimeEncoder 自定義時間編碼器: [2006-01-02 15:04:05]
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("2006-01-02 15:04:05") + "]")
}

// bracketLevelEncoder 自定義級別編碼器: [DEBUG]
func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// levelToZapLevel 將自定義 LogLevel 轉為 zapcore.Level
func levelToZapLevel(l LogLevel) zapcore.Level {
	switch l {
	case LogDebug:
		return zapcore.DebugLevel
	case LogInfo:
		return zapcore.InfoLevel
	case LogWarn:
		return zapcore.WarnLevel
	case LogError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ============================================================================
// 日誌接口
// ============================================================================

// Log 統一日誌接口
// pathKey: i18n 鍵名（作為日誌標識符，便於過濾），為空時不輸出
func (l *Logger) Log(level LogLevel, pathKey string, message string) {
	// 每次寫日誌前檢查是否需要輪轉（跨天時自動切檔）
	l.rotateIfNeeded()

	var formatted string
	if pathKey != "" {
		formatted = "[" + pathKey + "][" + message + "]"
	} else {
		formatted = "[" + message + "]"
	}

	switch level {
	case LogDebug:
		l.zap.Debug(formatted)
	case LogInfo:
		l.zap.Info(formatted)
	case LogWarn:
		l.zap.Warn(formatted)
	case LogError:
		l.zap.Error(formatted)
	}
}

// Sync 刷新緩衝區（應用退出時調用）
func (l *Logger) Sync() {
	if l.zap != nil {
		l.zap.Sync()
	}
}
