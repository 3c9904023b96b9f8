package main

import "fmt"

// ============================================================================
// 日志函数 - 四个级别
// key: i18n 键名（如 "log.loader.done"），args 替换翻译文本中的占位符
// ============================================================================

func logDebug(key string, args ...any) { logKeyed(LogDebug, key, args...) }

func logInfo(key string, args ...any) { logKeyed(LogInfo, key, args...) }

func logWarn(key string, args ...any) { logKeyed(LogWarn, key, args...) }

func logError(key string, args ...any) { logKeyed(LogError, key, args...) }

func logKeyed(level LogLevel, key string, args ...any) {
	if globalLogger == nil {
		return
	}
	text := getLogText(key)
	if len(args) > 0 {
		text = fmt.Sprintf(text, args...)
	}
	globalLogger.Log(level, key, text)
}

// getLogText 获取 i18n 日志文本，找不到时返回 key 本身
func getLogText(key string) string {
	return lookupText(currentLanguage(), key)
}

// ============================================================================
// 简化日志函数 - 用于没有 i18n key 的直接消息
// ============================================================================

// logErrorDirect 直接记录 ERROR 级别消息（无 key）
func logErrorDirect(format string, args ...any) {
	if globalLogger == nil {
		return
	}
	globalLogger.Log(LogError, "", fmt.Sprintf(format, args...))
}
