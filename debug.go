package main

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// 调试日志系统
// ============================================================================

// logUserAction 记录用户操作到调试面板，actionKey 为 i18n 键名
func (m *Model) logUserAction(actionKey string, args ...any) {
	if !m.debugMode {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	action := fmt.Sprintf(m.getText(actionKey), args...)
	m.addDebugLog(fmt.Sprintf("[%s] %s %s", timestamp, m.getText("debug.action.prefix"), action))
}

// addDebugLog 添加调试日志
func (m *Model) addDebugLog(msg string) {
	m.debugLogs = append(m.debugLogs, msg)
	// 用户正在查看历史日志时保持当前内容不动
	if m.debugScrollPos > 0 {
		m.debugScrollPos++
	}
}

// ============================================================================
// 调试日志滚动控制
// ============================================================================

func (m *Model) scrollDebugUp() {
	if m.debugScrollPos < len(m.debugLogs)-1 {
		m.debugScrollPos++
	}
}

func (m *Model) scrollDebugDown() {
	if m.debugScrollPos > 0 {
		m.debugScrollPos--
	}
}

func (m *Model) scrollDebugToTop() {
	if len(m.debugLogs) > 0 {
		m.debugScrollPos = len(m.debugLogs) - 1
	}
}

func (m *Model) scrollDebugToBottom() {
	m.debugScrollPos = 0
}

// ============================================================================
// 调试面板渲染
// ============================================================================

// renderDebugPanel 渲染调试面板
func (m *Model) renderDebugPanel() string {
	if !m.debugMode {
		return ""
	}

	const maxDebugLines = 6

	if len(m.debugLogs) == 0 {
		return "\n" + m.getText("debug.empty")
	}

	var b strings.Builder
	b.WriteString("\n" + strings.Repeat("=", 80) + "\n")

	total := len(m.debugLogs)
	b.WriteString(fmt.Sprintf(m.getText("debug.header"), total-m.debugScrollPos, total))
	b.WriteString("\n" + strings.Repeat("-", 80) + "\n")

	endIndex := total - m.debugScrollPos
	startIndex := endIndex - maxDebugLines
	if startIndex < 0 {
		startIndex = 0
	}

	for i := startIndex; i < endIndex; i++ {
		prefix := ""
		if i == endIndex-1 && m.debugScrollPos == 0 {
			prefix = "→ "
		}
		b.WriteString(prefix + m.debugLogs[i] + "\n")
	}

	b.WriteString(strings.Repeat("=", 80))
	return b.String()
}
