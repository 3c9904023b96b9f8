package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
)

// namedColor 一个颜色在终端、表格和导出图片中的表示
type namedColor struct {
	terminal lipgloss.Color // ANSI 颜色编号
	pretty   text.Color     // go-pretty 前景色
	hex      string         // SVG / PNG 使用的十六进制值
}

// ColorUtils 颜色工具类
type ColorUtils struct{}

// NewColorUtils 创建颜色工具实例
func NewColorUtils() *ColorUtils {
	return &ColorUtils{}
}

// GetSupportedColors 获取支持的颜色名称
func (c *ColorUtils) GetSupportedColors() map[string]namedColor {
	return map[string]namedColor{
		"red":     {terminal: "9", pretty: text.FgRed, hex: "#d62728"},
		"blue":    {terminal: "12", pretty: text.FgBlue, hex: "#1f77b4"},
		"green":   {terminal: "10", pretty: text.FgGreen, hex: "#2ca02c"},
		"yellow":  {terminal: "11", pretty: text.FgYellow, hex: "#bcbd22"},
		"magenta": {terminal: "13", pretty: text.FgMagenta, hex: "#9467bd"},
		"cyan":    {terminal: "14", pretty: text.FgCyan, hex: "#17becf"},
		"white":   {terminal: "15", pretty: text.FgWhite, hex: "#7f7f7f"},
	}
}

// Resolve 按名称查找颜色，无效时使用 fallback
// 以 # 开头的值直接作为十六进制颜色使用
func (c *ColorUtils) Resolve(name, fallback string) namedColor {
	if strings.HasPrefix(name, "#") && (len(name) == 7 || len(name) == 4) {
		return namedColor{terminal: lipgloss.Color(name), pretty: text.FgHiWhite, hex: name}
	}
	colors := c.GetSupportedColors()
	if col, exists := colors[strings.ToLower(name)]; exists {
		return col
	}
	return colors[fallback]
}

// BarStyle 柱形在终端中的样式
func (c *ColorUtils) BarStyle(name, fallback string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Resolve(name, fallback).terminal)
}
