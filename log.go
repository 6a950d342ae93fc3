package main

import "fmt"

// ============================================================================
// 日誌函數 - 四個級別
// key 是 i18n 鍵名（如 "log.rate.fallback"），args 替換翻譯文本中的佔位符
// ============================================================================

// logDebug DEBUG 級別日誌 - 詳細調試資訊
func logDebug(key string, args ...any) {
	writeLog(LogDebug, key, args...)
}

// logInfo INFO 級別日誌 - 正常運行資訊
func logInfo(key string, args ...any) {
	writeLog(LogInfo, key, args...)
}

// logWarn WARN 級別日誌 - 可能的問題
func logWarn(key string, args ...any) {
	writeLog(LogWarn, key, args...)
}

// logError ERROR 級別日誌 - 需要關注的錯誤
func logError(key string, args ...any) {
	writeLog(LogError, key, args...)
}

// writeLog 取出 i18n 文本、格式化後寫入日誌檔
func writeLog(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}

	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}

	globalLogger.Log(level, key, text)
}

// getLogText 取得 i18n 日誌文本，找不到時退回 key 本身
func getLogText(key string) string {
	if globalModel != nil {
		return globalModel.getText(key)
	}
	return key
}
