package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ============================================================================
// 数值格式化 - 按界面语言本地化
// ============================================================================

// printerFor 返回对应语言的格式化器
func printerFor(lang Language) *message.Printer {
	if lang == Chinese {
		return message.NewPrinter(language.SimplifiedChinese)
	}
	return message.NewPrinter(language.English)
}

// formatSupport 格式化支持度数值（两位小数，带千分位）
func formatSupport(v float64, lang Language) string {
	return printerFor(lang).Sprintf("%.2f", v)
}

// formatShare 格式化占窗口总和的比例
func formatShare(v, total float64, lang Language) string {
	if total == 0 {
		return "-"
	}
	return printerFor(lang).Sprintf("%.1f%%", v/total*100)
}

// formatCount 格式化 "当前/总数"
func formatCount(n, total int, lang Language) string {
	return printerFor(lang).Sprintf("%d/%d", n, total)
}
